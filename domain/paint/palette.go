package paint

import "image/color"

// Channel identifies one of the fixed brush colors.
type Channel int

const (
	Blue Channel = iota
	Green
	Red
	Yellow
)

// NumChannels is the number of brush colors.
const NumChannels = 4

var channelColors = [NumChannels]color.RGBA{
	Blue:   {R: 0, G: 0, B: 255},
	Green:  {R: 0, G: 255, B: 0},
	Red:    {R: 255, G: 0, B: 0},
	Yellow: {R: 255, G: 255, B: 0},
}

var channelNames = [NumChannels]string{"Blue", "Green", "Red", "Yellow"}

// Valid reports whether c names a known channel.
func (c Channel) Valid() bool { return c >= 0 && c < NumChannels }

// Color returns the draw color for c. Unknown channels are black.
func (c Channel) Color() color.RGBA {
	if !c.Valid() {
		return color.RGBA{}
	}
	return channelColors[c]
}

func (c Channel) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return channelNames[c]
}

// ChannelNames lists channel names in index order.
func ChannelNames() []string {
	out := make([]string, NumChannels)
	copy(out, channelNames[:])
	return out
}
