package preview

import (
	"bytes"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func setupListeners(uiState *UIState) {
	setupListenersForApp(uiState)
	setupListenersForTreeView(uiState)
	setupListenersForDetailsView(uiState)
	setupListenersForCmdInput(uiState)
}

func showDetails(uiState *UIState, node *tview.TreeNode) {
	data, err := extractTreeData(node)
	if err != nil {
		slog.Debug("details skipped", "error", err)
		return
	}
	buf := bytes.Buffer{}
	if err := Describe(&buf, data); err != nil {
		uiState.detailsView.SetText(node.GetText())
		return
	}
	uiState.detailsView.SetText(buf.String())
}

func setupListenersForTreeView(uiState *UIState) {
	uiState.treeView.SetSelectedFunc(func(node *tview.TreeNode) {
		if node == nil {
			return
		}
		data, err := extractTreeData(node)
		if err != nil {
			slog.Error("select failed", "error", err)
			return
		}

		// open subview with a subtree
		if data.IsNodeType(nodeTypeAnchor, nodeTypeDir) && !data.inPreview && !uiState.isInFilter {
			if err := setInPreview(node, true); err != nil {
				slog.Error("select failed", "error", err)
				return
			}
			uiState.navigationStack = append(uiState.navigationStack, node)
			uiState.treeView.SetRoot(node).SetCurrentNode(node)
			node.SetExpanded(true)
			return
		}
		// just expand subtree
		node.SetExpanded(!node.IsExpanded())
	})

	uiState.treeView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyTab {
			focusDetails(uiState)
			return nil
		}
		if event.Key() != tcell.KeyEscape {
			return event
		}

		// leave the filtered view, keep the selection
		if uiState.isInFilter {
			current := uiState.treeView.GetCurrentNode()
			showFilteredTree(uiState, "")
			if current != nil {
				if orig, ok := uiState.treeLinks.Reveal(current); ok {
					uiState.treeView.SetCurrentNode(orig)
				}
			}
			return nil
		}

		// back to the parent sub-view (step back)
		if len(uiState.navigationStack) > 1 {
			cur := uiState.navigationStack[len(uiState.navigationStack)-1]
			if err := setInPreview(cur, false); err != nil {
				slog.Error("step back failed", "error", err)
				return nil
			}
			uiState.navigationStack = uiState.navigationStack[:len(uiState.navigationStack)-1]
			prevNode := uiState.navigationStack[len(uiState.navigationStack)-1]
			uiState.treeView.SetRoot(prevNode).SetCurrentNode(cur)
			return nil
		}
		return event
	})

	// Handle selection changes
	uiState.treeView.SetChangedFunc(func(node *tview.TreeNode) {
		if node == nil {
			return
		}
		showDetails(uiState, node)
	})
}

func setupListenersForDetailsView(uiState *UIState) {
	uiState.detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyTab {
			focusTree(uiState)
			return nil
		}
		return event
	})
}

func setupListenersForCmdInput(uiState *UIState) {
	// Search was set, apply it, close input, set focus onto the tree
	uiState.cmdInput.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter && key != tcell.KeyEscape {
			return
		}
		if key == tcell.KeyEnter && uiState.cmdInputOn {
			searchTerm := uiState.cmdInput.GetText()
			slog.Debug("search", "term", searchTerm)
			showFilteredTree(uiState, searchTerm)
		}

		uiState.cmdInput.SetText("")
		uiState.cmdInputOn = false
		uiState.mainLayout.RemoveItem(uiState.cmdInput) // Hide the input field
		focusTree(uiState)
	})
}

func setupListenersForApp(uiState *UIState) {
	uiState.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() != tcell.KeyRune || uiState.cmdInputOn {
			return event
		}
		switch event.Rune() {
		case '/':
			uiState.cmdInputOn = true
			uiState.mainLayout.AddItem(uiState.cmdInput, 3, 1, true) // Show the input field
			uiState.app.SetFocus(uiState.cmdInput)
			return nil
		case 'q':
			uiState.app.Stop()
			return nil
		}
		return event
	})
}

func focusTree(uiState *UIState) {
	uiState.treeView.SetBorderColor(focusColor)
	uiState.detailsView.SetBorderColor(noFocusColor)
	uiState.app.SetFocus(uiState.treeView)
}

func focusDetails(uiState *UIState) {
	uiState.treeView.SetBorderColor(noFocusColor)
	uiState.detailsView.SetBorderColor(focusColor)
	uiState.app.SetFocus(uiState.detailsView)
}
