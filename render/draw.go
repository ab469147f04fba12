package render

import (
	"image/color"
	"strconv"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"niceview/hal"
	"niceview/status"
)

var (
	colorBG = color.RGBA{A: 0xFF}
	colorFG = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

var font = &proggy.TinySZ8pt7b

// Output endpoint symbols. The display has no symbol font, so these are
// short text badges.
const (
	symbolUSB          = "USB"
	symbolBLEConnected = "BT"
	symbolBLEDropped   = "X"
	symbolBLEUnpaired  = "?"
)

// outputSymbol picks the endpoint badge. An unbonded profile always shows
// the unpaired symbol, whatever the connected flag claims.
func outputSymbol(st status.State) string {
	switch st.Endpoint.Transport {
	case hal.TransportUSB:
		return symbolUSB
	case hal.TransportBLE:
		if !st.ActiveProfileBonded {
			return symbolBLEUnpaired
		}
		if st.ActiveProfileConnected {
			return symbolBLEConnected
		}
		return symbolBLEDropped
	default:
		return ""
	}
}

// layerText is the bottom-region label, falling back to "LAYER N" for
// unnamed layers.
func layerText(st status.State) string {
	if st.LayerLabel != "" {
		return st.LayerLabel
	}
	return "LAYER " + strconv.Itoa(st.LayerIndex)
}

// DrawTop renders the battery gauge, the endpoint badge and the boxed
// last-key label.
func DrawTop(s *Surface, st status.State) {
	s.Fill(colorBG)

	drawBattery(s, st)

	if sym := outputSymbol(st); sym != "" {
		_, w := tinyfont.LineWidth(font, sym)
		tinyfont.WriteLine(s, font, CanvasSize-int16(w)-1, 12, sym, colorFG)
	}

	_ = s.FillRectangle(0, 21, 68, 42, colorFG)
	_ = s.FillRectangle(1, 22, 66, 40, colorBG)
	if st.ShowLastKey {
		writeCentered(s, st.LastKey, 46)
	}
}

// circleOffsets places the five profile indicators.
var circleOffsets = [hal.ProfileCount][2]int16{
	{13, 13}, {55, 13}, {34, 34}, {13, 55}, {55, 55},
}

const digits = "12345"

// DrawMiddle renders the wireless profile selector: five numbered circles
// with the active profile filled.
func DrawMiddle(s *Surface, st status.State) {
	s.Fill(colorBG)

	for i := 0; i < hal.ProfileCount; i++ {
		cx, cy := circleOffsets[i][0], circleOffsets[i][1]
		selected := i == st.ActiveProfileIndex

		drawCircle(s, cx, cy, 13, colorFG)
		if selected {
			fillCircle(s, cx, cy, 9, colorFG)
		}

		label := digits[i : i+1]
		fg := colorFG
		if selected {
			fg = colorBG
		}
		_, w := tinyfont.LineWidth(font, label)
		tinyfont.WriteLine(s, font, cx-int16(w)/2, cy+4, label, fg)
	}
}

// DrawBottom renders the active layer label.
func DrawBottom(s *Surface, st status.State) {
	s.Fill(colorBG)
	writeCentered(s, layerText(st), 14)
}

func writeCentered(s *Surface, text string, baseline int16) {
	_, w := tinyfont.LineWidth(font, text)
	x := (CanvasSize - int16(w)) / 2
	if x < 0 {
		x = 0
	}
	tinyfont.WriteLine(s, font, x, baseline, text, colorFG)
}

func drawBattery(s *Surface, st status.State) {
	// Case, terminal nub, then the charge bar.
	_ = s.FillRectangle(0, 2, 25, 12, colorFG)
	_ = s.FillRectangle(1, 3, 23, 10, colorBG)
	_ = s.FillRectangle(25, 5, 3, 6, colorFG)

	level := st.Battery
	if level > 100 {
		level = 100
	}
	w := int16(level) * 21 / 100
	_ = s.FillRectangle(2, 4, w, 8, colorFG)

	if st.Charging {
		tinyfont.WriteLine(s, font, 30, 13, "+", colorFG)
	}
}

func drawCircle(s *Surface, cx, cy, r int16, c color.RGBA) {
	// Midpoint circle, outline only.
	x, y := r, int16(0)
	err := int16(1) - r
	for x >= y {
		plot8(s, cx, cy, x, y, c)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

func fillCircle(s *Surface, cx, cy, r int16, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				s.SetPixel(cx+dx, cy+dy, c)
			}
		}
	}
}

func plot8(s *Surface, cx, cy, x, y int16, c color.RGBA) {
	s.SetPixel(cx+x, cy+y, c)
	s.SetPixel(cx-x, cy+y, c)
	s.SetPixel(cx+x, cy-y, c)
	s.SetPixel(cx-x, cy-y, c)
	s.SetPixel(cx+y, cy+x, c)
	s.SetPixel(cx-y, cy+x, c)
	s.SetPixel(cx+y, cy-x, c)
	s.SetPixel(cx-y, cy-x, c)
}
