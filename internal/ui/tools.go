package ui

import (
	"MotionBoard/internal/editor"
	"MotionBoard/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var modeNames = []string{editor.ModeDraw.String(), editor.ModeSelect.String()}

func modeFromName(name string) editor.Mode {
	if name == editor.ModeSelect.String() {
		return editor.ModeSelect
	}
	return editor.ModeDraw
}

// NewToolbar builds the tool row: mode choice plus the new stroke and export
// actions.
func NewToolbar(win fyne.Window, board *BoardWidget, bar *timelineBar, status *widget.Label, r *render.Renderer) fyne.CanvasObject {
	session := board.session

	modes := widget.NewRadioGroup(modeNames, func(name string) {
		session.SetMode(modeFromName(name))
		status.SetText("Mode: " + name)
	})
	modes.Horizontal = true
	modes.Required = true
	modes.SetSelected(session.Mode().String())

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentAddIcon(), func() {
			session.Deselect()
			bar.SyncSelection()
			board.Refresh()
			status.SetText("Next point starts a new stroke")
		}), // New stroke
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			showExportDialog(win, session, r, status)
		}), // Export PDF
	)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		modes,
		widget.NewSeparator(),
		tb,
		layout.NewSpacer(),
	)
}
