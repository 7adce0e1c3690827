package ui

import (
	"fmt"

	"MotionBoard/internal/editor"
	"MotionBoard/internal/export"
	"MotionBoard/internal/logging"
	"MotionBoard/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// showExportDialog asks for a file and writes the current frame to it as PDF.
func showExportDialog(win fyne.Window, session *editor.Session, r *render.Renderer, status *widget.Label) {
	position := session.Timeline().Position()
	save := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if w == nil {
			return // cancelled
		}
		defer w.Close()

		if err := export.WriteFrame(w, session.Store(), r, position, export.Options{Guides: false, Margin: 10}); err != nil {
			logging.For("ui").Error("export failed", "err", err)
			dialog.ShowError(err, win)
			return
		}
		status.SetText(fmt.Sprintf("Exported frame at %.2fs to %s", position, w.URI().Name()))
	}, win)
	save.SetFileName("frame.pdf")
	save.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	save.Show()
}
