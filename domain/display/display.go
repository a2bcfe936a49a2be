package display

import "gocv.io/x/gocv"

// Role names the image being shown.
type Role int

const (
	LiveFrame Role = iota
	Mask
	Canvas
)

func (r Role) String() string {
	switch r {
	case LiveFrame:
		return "Webcam Feed"
	case Mask:
		return "Mask"
	case Canvas:
		return "Paint Window"
	default:
		return "unknown"
	}
}

// NumRoles is the number of distinct roles.
const NumRoles = 3

// Roles lists every role in display order.
var Roles = []Role{LiveFrame, Mask, Canvas}

// Sink receives images for display. Show must not retain img beyond the call.
type Sink interface {
	Show(role Role, img gocv.Mat)
}

// Discard drops every image.
type Discard struct{}

func (Discard) Show(Role, gocv.Mat) {}
