package preview

import (
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/hashmap-kz/mdtree/pkg/pathtree"
	"github.com/rivo/tview"
)

type UIState struct {
	app         *tview.Application
	rootNode    *tview.TreeNode
	treeView    *tview.TreeView
	detailsView *tview.TextView
	mainLayout  *tview.Flex
	cmdInput    *tview.InputField
	cmdInputOn  bool
	isInFilter  bool
	treeLinks   *TreeLinks

	// Stack to handle navigation back
	navigationStack []*tview.TreeNode
}

// Run shows the tree in an interactive terminal view until the user quits.
func Run(root *pathtree.Node, title string) error {
	app := tview.NewApplication()

	rootNode := BuildTreeNodes(root, title)
	slog.Debug("preview tree built", "anchors", len(rootNode.GetChildren()))

	// Create the help menu (top)
	helpMenu := tview.NewTextView()
	helpMenu.SetDynamicColors(true)
	helpMenu.SetTextAlign(tview.AlignLeft)
	helpMenu.SetText(getHelpMenuContent())
	helpMenu.SetBorder(true)

	// Create a main tree view (lhs)
	treeView := tview.NewTreeView()
	treeView.SetRoot(rootNode)
	treeView.SetCurrentNode(rootNode)
	treeView.SetGraphicsColor(tcell.ColorWhite)
	treeView.SetTitle("Tree")
	treeView.SetBorder(true)
	treeView.SetBorderColor(focusColor)

	// Create a main details view (rhs)
	detailsView := tview.NewTextView()
	detailsView.SetDynamicColors(true)
	detailsView.SetBorder(true)
	detailsView.SetTitle("Details")
	detailsView.SetScrollable(true)
	detailsView.SetWrap(true)
	detailsView.SetTextColor(tcell.ColorLightGray)
	detailsView.SetBorderColor(noFocusColor)

	// Create a horizontal flex layout for tree-view and details-view
	viewsLayout := tview.NewFlex()
	viewsLayout.AddItem(treeView, 0, 1, true)
	viewsLayout.AddItem(detailsView, 0, 1, false)

	// Create a main layout for app
	mainLayout := tview.NewFlex()
	mainLayout.SetDirection(tview.FlexRow)
	mainLayout.AddItem(helpMenu, 3, 1, false)
	mainLayout.AddItem(viewsLayout, 0, 2, true)

	// Create the input field (bottom, hidden by default)
	cmdInput := tview.NewInputField()
	cmdInput.SetLabel("Search: ")
	cmdInput.SetFieldWidth(32)
	cmdInput.SetBorder(true)
	cmdInput.SetFieldTextColor(tcell.ColorLightGray)
	cmdInput.SetBackgroundColor(tcell.ColorBlack)
	cmdInput.SetLabelColor(tcell.ColorYellow)
	cmdInput.SetFieldBackgroundColor(tcell.ColorBlack)

	// parent/child relationships (used for leaving the filtered view)
	treeLinks := NewTreeLinks()
	treeLinks.FillLinks(rootNode)

	uiState := &UIState{
		app:         app,
		rootNode:    rootNode,
		treeView:    treeView,
		detailsView: detailsView,
		mainLayout:  mainLayout,
		cmdInput:    cmdInput,
		treeLinks:   treeLinks,

		navigationStack: []*tview.TreeNode{rootNode},
	}
	setupListeners(uiState)
	showDetails(uiState, rootNode)

	return app.SetRoot(mainLayout, true).Run()
}

func getHelpMenuContent() string {
	return strings.TrimSpace(`
[yellow]</term>[-] Search | [yellow]<ENTER>[-] Open dir | [yellow]<ESC>[-] Step back | [yellow]<TAB>[-] Focus tree/details | [yellow]<q>[-] Quit
`)
}
