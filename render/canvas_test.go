package render

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// sameColor compares with tolerance for 8-bit rounding
func sameColor(a, b Color) bool {
	return math.Abs(a.R-b.R) < 0.01 && math.Abs(a.G-b.G) < 0.01 && math.Abs(a.B-b.B) < 0.01
}

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestCanvasDimensions(t *testing.T) {
	c := NewCanvas(80, 36)

	if c.Height() != 720 {
		t.Errorf("Height = %v, want 720", c.Height())
	}
	// 80x72 pixels at 0.1 px per unit
	if c.Width() != 800 {
		t.Errorf("Width = %v, want 800", c.Width())
	}

	c.Resize(40, 18)
	if c.Cols() != 40 || c.Rows() != 18 || c.Width() != 800 {
		t.Errorf("After resize: cols=%d rows=%d width=%v", c.Cols(), c.Rows(), c.Width())
	}
}

func TestFillRectAndAlpha(t *testing.T) {
	c := NewCanvas(80, 36)
	red := Hex("#ff0000")

	c.FillRect(100, 100, 100, 100, red)
	if !sameColor(c.PixelAt(150, 150), red) {
		t.Errorf("Inside = %v, want red", c.PixelAt(150, 150))
	}
	if !sameColor(c.PixelAt(300, 150), Black) {
		t.Errorf("Outside should stay black")
	}

	c.Save()
	c.SetAlpha(0.5)
	c.FillRect(400, 100, 100, 100, White)
	c.Restore()

	got := c.PixelAt(450, 150)
	if math.Abs(got.R-0.5) > 0.01 {
		t.Errorf("Half alpha over black = %v, want 0.5 grey", got)
	}
	if c.Alpha() != 1 {
		t.Errorf("Restore did not reset alpha")
	}
}

func TestTranslateRotate(t *testing.T) {
	c := NewCanvas(80, 36)
	green := Hex("#00ff00")

	c.Save()
	c.Translate(400, 360)
	c.Rotate(math.Pi / 2)
	// A wide thin bar becomes tall and thin after a quarter turn
	c.FillRect(-100, -10, 200, 20, green)
	c.Restore()

	if !sameColor(c.PixelAt(400, 300), green) {
		t.Error("Rotated bar should cover above the origin")
	}
	if !sameColor(c.PixelAt(480, 360), Black) {
		t.Error("Rotated bar should no longer extend sideways")
	}
}

func TestFillPolygonAndCircle(t *testing.T) {
	c := NewCanvas(80, 36)
	blue := Hex("#0000ff")

	c.FillPolygon([]mgl64.Vec2{{100, 100}, {300, 100}, {200, 300}}, blue)
	if !sameColor(c.PixelAt(200, 150), blue) {
		t.Error("Triangle interior not filled")
	}
	if !sameColor(c.PixelAt(110, 290), Black) {
		t.Error("Triangle exterior filled")
	}

	c.FillCircle(600, 400, 50, White)
	if !sameColor(c.PixelAt(600, 400), White) {
		t.Error("Circle center not filled")
	}
	if !sameColor(c.PixelAt(600, 480), Black) {
		t.Error("Circle filled past its radius")
	}
}

func TestLineClipsFarEndpoints(t *testing.T) {
	c := NewCanvas(80, 36)

	// Endpoints far off-canvas must neither hang nor panic
	c.Line(-1e9, 360, 1e9, 360, White, 4)

	if !sameColor(c.PixelAt(400, 360), White) {
		t.Error("Visible part of the segment not drawn")
	}
}

func TestFlushHalfBlocks(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	c := NewCanvas(10, 5)

	// Top pixel row of cell row 0 only: virtual height 720 / 10 px = 72 units per pixel
	c.FillRect(0, 0, c.Width(), 72, Hex("#ff0000"))
	c.TextCell(3, 2, "HI", White)
	c.Flush(screen)

	r, _, style, _ := screen.GetContent(0, 0)
	if r != upperHalfBlock {
		t.Fatalf("Rune = %q, want half block", r)
	}
	fg, bg, _ := style.Decompose()
	if fr, _, _ := fg.RGB(); fr != 255 {
		t.Errorf("Top pixel red = %d, want 255", fr)
	}
	if br, _, _ := bg.RGB(); br != 0 {
		t.Errorf("Bottom pixel red = %d, want 0", br)
	}

	if r, _, _, _ := screen.GetContent(3, 2); r != 'H' {
		t.Errorf("Text cell = %q, want H", r)
	}
	if r, _ := c.Glyph(4, 2); r != 'I' {
		t.Errorf("Glyph = %q, want I", r)
	}
}

func TestHexFallback(t *testing.T) {
	if !sameColor(Hex("not-a-color"), White) {
		t.Error("Invalid hex should fall back to white")
	}
	if !sameColor(Hex("#000000"), Black) {
		t.Error("Black parsed incorrectly")
	}
}

func TestGradientEnds(t *testing.T) {
	top, bottom := Hex("#020617"), Hex("#2e1065")
	if !sameColor(Gradient(top, bottom, 0), top) || !sameColor(Gradient(top, bottom, 1), bottom) {
		t.Error("Gradient endpoints wrong")
	}
}
