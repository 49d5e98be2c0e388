package pathtree

import (
	"strings"
	"testing"
)

const testAnchor = "PROJECT INSTRUCTIONS"

func TestNormalize_KeepsSuffixFromAnchor(t *testing.T) {
	parts, ok := Normalize("home/user/PROJECT INSTRUCTIONS/A/x.txt", testAnchor)
	if !ok {
		t.Fatal("Expected anchor to be found")
	}
	if got := strings.Join(parts, "|"); got != "PROJECT INSTRUCTIONS|A|x.txt" {
		t.Fatalf("Unexpected segments: %s", got)
	}
}

func TestNormalize_FirstOccurrenceWins(t *testing.T) {
	parts, ok := Normalize("PROJECT INSTRUCTIONS/A/PROJECT INSTRUCTIONS/x", testAnchor)
	if !ok {
		t.Fatal("Expected anchor to be found")
	}
	if len(parts) != 4 {
		t.Fatalf("Expected 4 segments, got %v", parts)
	}
}

func TestNormalize_ExactMatchOnly(t *testing.T) {
	if _, ok := Normalize("project instructions/A/x", testAnchor); ok {
		t.Fatal("Expected case-different segment not to match")
	}
	if _, ok := Normalize("PROJECT INSTRUCTIONS 2/A/x", testAnchor); ok {
		t.Fatal("Expected prefix-only segment not to match")
	}
}

func TestNormalize_NoAnchor(t *testing.T) {
	parts, ok := Normalize("ignored/no-anchor/here", testAnchor)
	if ok || parts != nil {
		t.Fatalf("Expected path to be skipped, got %v", parts)
	}
}

func TestBuild_AnchorOnly(t *testing.T) {
	root := Build([]string{"x/PROJECT INSTRUCTIONS"}, testAnchor)

	anchor, ok := root.Children[testAnchor]
	if !ok {
		t.Fatal("Expected anchor at the root level")
	}
	if !anchor.IsLeaf() {
		t.Fatalf("Expected anchor without children, got %+v", anchor.Children)
	}
}

func TestBuild_SkipsPathsWithoutAnchor(t *testing.T) {
	root := Build([]string{
		"PROJECT INSTRUCTIONS/A/x.txt",
		"ignored/no-anchor/here",
	}, testAnchor)

	if len(root.Children) != 1 {
		t.Fatalf("Expected only the anchor at the root, got %d children", len(root.Children))
	}
	if _, ok := root.Lookup("ignored"); ok {
		t.Fatal("Expected 'ignored' not to be in the tree")
	}
}

func TestBuild_DoesNotReorderInput(t *testing.T) {
	paths := []string{"PROJECT INSTRUCTIONS/b", "PROJECT INSTRUCTIONS/a"}
	Build(paths, testAnchor)

	if paths[0] != "PROJECT INSTRUCTIONS/b" {
		t.Fatalf("Expected input slice to be untouched, got %v", paths)
	}
}

func TestBuild_InsertionOrderIrrelevant(t *testing.T) {
	a := Build([]string{"PROJECT INSTRUCTIONS/B/z", "PROJECT INSTRUCTIONS/A/x"}, testAnchor)
	b := Build([]string{"PROJECT INSTRUCTIONS/A/x", "PROJECT INSTRUCTIONS/B/z"}, testAnchor)

	if RenderMarkdown(a) != RenderMarkdown(b) {
		t.Fatal("Expected identical output regardless of input order")
	}
}
