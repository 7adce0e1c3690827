package ui

import (
	"time"

	"MotionBoard/internal/config"
	"MotionBoard/internal/editor"
	"MotionBoard/internal/logging"
	"MotionBoard/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RunApp opens the editor window and blocks until it is closed.
func RunApp(cfg config.Config, session *editor.Session, r *render.Renderer) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Window.Title)
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	board := NewBoardWidget(session, r)
	status := widget.NewLabel("")
	bar := newTimelineBar(session)

	board.OnError = func(err error) {
		status.SetText(err.Error())
	}
	board.OnChange = bar.SyncSelection

	toolbar := NewToolbar(myWindow, board, bar, status, r)
	content := container.NewBorder(toolbar, container.NewVBox(bar, status), nil, nil, board)

	myWindow.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) {
		switch e.Name {
		case fyne.KeySpace:
			session.Timeline().TogglePlaying()
			bar.SyncPlaying()
		case fyne.KeyEscape:
			session.Deselect()
			bar.SyncSelection()
			board.Refresh()
		}
	})

	loop := frameLoop(func(dt float32) {
		session.Tick(dt)
		bar.SyncPosition()
		board.Sync()
	})

	myWindow.SetContent(content)
	myWindow.SetOnClosed(loop.Stop)
	loop.Start()
	logging.For("ui").Info("window opened", "strokes", session.Store().Len())
	myWindow.ShowAndRun()
}

// frameLoop calls tick once per rendered frame with the seconds elapsed since
// the previous one.
func frameLoop(tick func(dt float32)) *fyne.Animation {
	last := time.Now()
	anim := fyne.NewAnimation(time.Second, func(float32) {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now
		tick(dt)
	})
	anim.RepeatCount = fyne.AnimationRepeatForever
	anim.Curve = fyne.AnimationLinear
	return anim
}
