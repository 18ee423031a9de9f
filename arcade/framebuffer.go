package arcade

import "github.com/h-boehm/invaders8080/cpu8080"

// Surface is the pixel sink the video package's ebiten driver
// implements: an RGBA buffer the framebuffer view plots into and the
// driver later blits to the window, mirroring the teacher's
// bufferMutex-guarded frameBuffer []byte in EbitenOutput.
type Surface interface {
	SetPixel(x, y int, r, g, b byte)
	Width() int
	Height() int
}

// Screen width and height in the physical (rotated-upright) orientation:
// the cabinet's CRT is 256x224 lying on its side; rotated 90 degrees
// counter-clockwise it reads 224 wide by 256 tall.
const (
	ScreenWidth  = 224
	ScreenHeight = 256
)

// colorBand picks the cabinet's classic three-band overlay color for
// a given logical row (0 = top of the unrotated 256-row VRAM column).
func colorBand(row int) (r, g, b byte) {
	switch {
	case row < 256/5:
		return 0xFF, 0x00, 0x00 // top fifth: red
	case row >= 256-256/10:
		return 0x00, 0x00, 0xFF // bottom tenth: blue
	default:
		return 0xFF, 0xFF, 0xFF // middle: white
	}
}

// Framebuffer is the VRAM-to-pixel view spec.md §4.7 describes. It
// carries no state of its own; mem/surf are supplied per call so a
// single Framebuffer can render for any State/Surface pair.
type Framebuffer struct{}

// Render reads mem's 7 KiB VRAM bitmap and plots each set bit onto
// surf at its rotated coordinate, scaled by scale (1..3 per the CLI's
// documented range). VRAM is column-major: byte i covers 8 vertically
// stacked pixels of column i/32, with bit 0 the topmost of the eight.
func (Framebuffer) Render(mem *cpu8080.Memory, surf Surface, scale int) {
	vram := mem.VRAM()
	for i, b := range vram {
		if b == 0 {
			continue
		}
		column := i / 32
		baseRow := (i % 32) * 8
		for bit := 0; bit < 8; bit++ {
			if b&(1<<uint(bit)) == 0 {
				continue
			}
			row := baseRow + bit
			r, g, bl := colorBand(row)
			dx := column * scale
			dy := (256*scale - 1 - row*scale)
			for sy := 0; sy < scale; sy++ {
				for sx := 0; sx < scale; sx++ {
					surf.SetPixel(dx+sx, dy-sy, r, g, bl)
				}
			}
		}
	}
}
