// Package video renders the cabinet framebuffer through ebiten,
// grounded on the teacher's EbitenOutput (video_backend_ebiten.go):
// a mutex-guarded RGBA buffer filled during Update (through OnFrame)
// and blitted to the window inside Draw.
package video

import (
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/h-boehm/invaders8080/arcade"
)

var log = slog.Default().With("component", "video")

// EbitenSurface implements both arcade.Surface (the framebuffer view's
// pixel sink) and ebiten.Game (the window's render/update loop).
type EbitenSurface struct {
	scale  int
	width  int
	height int

	mu     sync.Mutex
	pixels []byte // RGBA, width*height*4

	image *ebiten.Image

	OnFrame func() // called once per Update tick, e.g. to drive the scheduler
}

// NewEbitenSurface returns a surface sized for scale (1..3 per the
// CLI's documented range).
func NewEbitenSurface(scale int) *EbitenSurface {
	if scale < 1 {
		scale = 1
	}
	if scale > 3 {
		scale = 3
	}
	w := arcade.ScreenWidth * scale
	h := arcade.ScreenHeight * scale
	return &EbitenSurface{
		scale:  scale,
		width:  w,
		height: h,
		pixels: make([]byte, w*h*4),
	}
}

// SetPixel implements arcade.Surface.
func (s *EbitenSurface) SetPixel(x, y int, r, g, b byte) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.mu.Lock()
	off := (y*s.width + x) * 4
	s.pixels[off] = r
	s.pixels[off+1] = g
	s.pixels[off+2] = b
	s.pixels[off+3] = 0xFF
	s.mu.Unlock()
}

// Clear blanks the pixel buffer; callers plot a fresh frame with
// SetPixel afterward since Framebuffer.Render only visits VRAM's set
// bits.
func (s *EbitenSurface) Clear() {
	s.mu.Lock()
	for i := range s.pixels {
		s.pixels[i] = 0
	}
	s.mu.Unlock()
}

func (s *EbitenSurface) Width() int  { return s.width }
func (s *EbitenSurface) Height() int { return s.height }

// Run opens the window and blocks until it is closed or a fatal error
// occurs, per spec's "shutdown triggered by a quit event from the
// windowing collaborator".
func (s *EbitenSurface) Run(title string) error {
	ebiten.SetWindowSize(s.width, s.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(false)
	log.Info("window opened", "title", title, "width", s.width, "height", s.height)
	if err := ebiten.RunGame(s); err != nil {
		log.Error("ebiten run failed", "err", err)
		return err
	}
	return nil
}

// Update implements ebiten.Game.
func (s *EbitenSurface) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if s.OnFrame != nil {
		s.OnFrame()
	}
	return nil
}

// Draw implements ebiten.Game: it blits the mixed-resolution pixel
// buffer built up by SetPixel calls since the last frame.
func (s *EbitenSurface) Draw(screen *ebiten.Image) {
	if s.image == nil {
		s.image = ebiten.NewImage(s.width, s.height)
	}
	s.mu.Lock()
	s.image.WritePixels(s.pixels)
	s.mu.Unlock()
	screen.DrawImage(s.image, nil)
}

// Layout implements ebiten.Game.
func (s *EbitenSurface) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.width, s.height
}
