package display

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestDiscard_AcceptsEveryRole(t *testing.T) {
	img := gocv.NewMat()
	defer img.Close()
	var s Sink = Discard{}
	for _, r := range Roles {
		s.Show(r, img)
	}
	if len(Roles) != NumRoles {
		t.Fatalf("Roles has %d entries, NumRoles is %d", len(Roles), NumRoles)
	}
}

func TestRole_String(t *testing.T) {
	if LiveFrame.String() != "Webcam Feed" || Mask.String() != "Mask" || Canvas.String() != "Paint Window" {
		t.Fatalf("unexpected role names")
	}
	if Role(9).String() != "unknown" {
		t.Fatalf("unknown role name")
	}
}
