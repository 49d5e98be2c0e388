package pathtree

import (
	"strings"
	"testing"
)

func TestRenderMarkdown_Scenario(t *testing.T) {
	root := Build([]string{
		"PROJECT INSTRUCTIONS/A/x.txt",
		"PROJECT INSTRUCTIONS/A/y.txt",
		"PROJECT INSTRUCTIONS/B/z.txt",
		"ignored/no-anchor/here",
	}, testAnchor)

	want := strings.Join([]string{
		"# PROJECT INSTRUCTIONS",
		"- **A/**",
		"  - x.txt",
		"  - y.txt",
		"- **B/**",
		"  - z.txt",
	}, "\n")

	if got := RenderMarkdown(root); got != want {
		t.Fatalf("Unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderMarkdown_Empty(t *testing.T) {
	if got := RenderMarkdown(Build(nil, testAnchor)); got != "" {
		t.Fatalf("Expected empty output, got %q", got)
	}
}

func TestRenderMarkdown_DeepIndent(t *testing.T) {
	root := Build([]string{"PROJECT INSTRUCTIONS/a/b/c/file"}, testAnchor)

	want := strings.Join([]string{
		"# PROJECT INSTRUCTIONS",
		"- **a/**",
		"  - **b/**",
		"    - **c/**",
		"      - file",
	}, "\n")

	if got := RenderMarkdown(root); got != want {
		t.Fatalf("Unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderMarkdown_SiblingsSorted(t *testing.T) {
	root := Build([]string{
		"PROJECT INSTRUCTIONS/b",
		"PROJECT INSTRUCTIONS/C",
		"PROJECT INSTRUCTIONS/a",
	}, testAnchor)

	// byte-wise order: upper case sorts first
	want := "# PROJECT INSTRUCTIONS\n- C\n- a\n- b"
	if got := RenderMarkdown(root); got != want {
		t.Fatalf("Unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderMarkdown_MultipleAnchorRoots(t *testing.T) {
	root := NewNode()
	root.AddPath("Z/only")
	root.AddPath("M/one/two")

	want := "# M\n- **one/**\n  - two\n# Z\n- only"
	if got := RenderMarkdown(root); got != want {
		t.Fatalf("Unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderMarkdown_Deterministic(t *testing.T) {
	paths := []string{
		"PROJECT INSTRUCTIONS/q/1",
		"PROJECT INSTRUCTIONS/p/2",
		"PROJECT INSTRUCTIONS/p/1",
		"PROJECT INSTRUCTIONS/r",
	}
	first := RenderMarkdown(Build(paths, testAnchor))
	for i := 0; i < 20; i++ {
		if got := RenderMarkdown(Build(paths, testAnchor)); got != first {
			t.Fatalf("Run %d differs:\n%s\nfirst:\n%s", i, got, first)
		}
	}
}

func TestRenderMarkdown_AnchorHeadingHasNoMarker(t *testing.T) {
	root := Build([]string{"PROJECT INSTRUCTIONS"}, testAnchor)

	if got := RenderMarkdown(root); got != "# PROJECT INSTRUCTIONS" {
		t.Fatalf("Unexpected output: %q", got)
	}
}

func TestRenderHTML(t *testing.T) {
	md := RenderMarkdown(Build([]string{
		"PROJECT INSTRUCTIONS/A/x.txt",
		"PROJECT INSTRUCTIONS/b.txt",
	}, testAnchor))

	html, err := RenderHTML([]byte(md))
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	out := string(html)

	for _, want := range []string{
		`<h1 id="project-instructions">PROJECT INSTRUCTIONS</h1>`,
		"<strong>A/</strong>",
		"<li>x.txt</li>",
		"<li>b.txt</li>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected HTML to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Count(out, "<ul>") != 2 {
		t.Errorf("Expected two nested lists, got:\n%s", out)
	}
}
