// Package highgui shows the pipeline output in OpenCV windows and turns key
// presses into operator requests.
package highgui

import (
	"gocv.io/x/gocv"

	"github.com/soocke/marker-paint-go/domain/display"
)

// Windows is a display.Sink with one OpenCV window per role.
type Windows struct {
	wins [display.NumRoles]*gocv.Window
}

// NewWindows opens a window for every role, titled by the role name.
func NewWindows() *Windows {
	w := &Windows{}
	for _, role := range display.Roles {
		w.wins[role] = gocv.NewWindow(role.String())
	}
	return w
}

func (w *Windows) Show(role display.Role, img gocv.Mat) {
	if w == nil || int(role) < 0 || int(role) >= len(w.wins) || w.wins[role] == nil || img.Empty() {
		return
	}
	w.wins[role].IMShow(img)
}

// PollKey pumps the HighGUI event queue for up to delayMs and returns the
// pressed key or -1.
func (w *Windows) PollKey(delayMs int) int {
	if w == nil || w.wins[display.LiveFrame] == nil {
		return -1
	}
	return w.wins[display.LiveFrame].WaitKey(delayMs)
}

func (w *Windows) Close() error {
	if w == nil {
		return nil
	}
	for i, win := range w.wins {
		if win != nil {
			_ = win.Close()
			w.wins[i] = nil
		}
	}
	return nil
}
