// Package splash implements a "made with" splash screen: a logo that fades in,
// stays fully visible for a while and then reports completion.
//
// The host drives it once per frame:
//
//	s := splash.New(device, 1500*time.Millisecond, 1500*time.Millisecond)
//	if err := s.LoadContent(); err != nil {
//	    // skip the splash
//	}
//	s.SetOnComplete(s.Dispose)
//
//	// every frame
//	if s.IsActive() {
//	    s.Update(dt)
//	    s.Draw(screen)
//	}
package splash

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/splash/pkg/config"
)

// Device is the graphics context the splash screen renders for.
type Device interface {
	// ViewportSize returns the current size of the render target in pixels.
	ViewportSize() image.Point

	// OpenResource opens the byte stream of a bundled resource by ID.
	OpenResource(id string) (io.ReadCloser, error)

	// LoadImage decodes an image from r. The caller owns the returned image.
	LoadImage(r io.Reader) (*ebiten.Image, error)
}

// Renderer is the surface the splash screen draws onto. *ebiten.Image implements it.
type Renderer interface {
	Fill(clr color.Color)
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
}

// Phase is the state of a splash screen.
type Phase int

const (
	// PhaseFading: the logo opacity ramps linearly from 0 to 1.
	PhaseFading Phase = iota
	// PhaseHolding: the logo is fully visible.
	PhaseHolding
	// PhaseCompleted is terminal. The splash screen is inactive.
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseFading:
		return "Fading"
	case PhaseHolding:
		return "Holding"
	case PhaseCompleted:
		return "Completed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// SplashScreen shows the bundled logo centered on a black background.
//
// It is not safe for concurrent use; Update and Draw are expected on the game goroutine.
type SplashScreen struct {
	device Device

	image       *ebiten.Image
	displayRect image.Rectangle

	elapsed      time.Duration
	fadeDuration time.Duration
	holdDuration time.Duration

	phase      Phase
	alpha      float64
	active     bool
	disposed   bool
	onComplete func()
}

// New creates a splash screen that fades in over fadeDuration and then stays
// fully visible for holdDuration. A zero fadeDuration shows the logo at full
// opacity from the first frame.
//
// New panics if device is nil.
func New(device Device, fadeDuration, holdDuration time.Duration) *SplashScreen {
	if device == nil {
		panic("splash: device cannot be nil")
	}

	return &SplashScreen{
		device:       device,
		fadeDuration: fadeDuration,
		holdDuration: holdDuration,
		phase:        PhaseFading,
		active:       true,
	}
}

// LoadContent loads the bundled logo. Calling it again once the logo is loaded
// does nothing.
//
// A missing or undecodable logo is returned as an error; the splash screen stays
// unloaded and the caller is expected to skip it.
func (s *SplashScreen) LoadContent() error {
	if s.image != nil {
		return nil
	}
	if s.disposed {
		panic("splash: LoadContent called after Dispose")
	}

	rc, err := s.device.OpenResource(config.SplashLogoResourceID)
	if err != nil {
		return err
	}
	defer rc.Close()

	img, err := s.device.LoadImage(rc)
	if err != nil {
		return err
	}
	s.image = img
	return nil
}

// SetOnComplete sets the function called once when the hold phase ends.
func (s *SplashScreen) SetOnComplete(fn func()) {
	s.onComplete = fn
}

// Update advances the splash screen by deltaTime.
//
// It panics if the splash screen is inactive, disposed, or LoadContent has not
// loaded the logo yet.
func (s *SplashScreen) Update(deltaTime time.Duration) {
	if !s.active {
		panic("splash: Update called when the splash screen is no longer active")
	}
	if s.disposed {
		panic("splash: Update called after Dispose")
	}
	if s.image == nil {
		panic("splash: logo not loaded, call LoadContent before Update")
	}

	s.elapsed += deltaTime

	switch s.phase {
	case PhaseFading:
		if s.elapsed >= s.fadeDuration {
			s.phase = PhaseHolding
			s.elapsed = 0
			s.alpha = 1
		} else {
			s.alpha = float64(s.elapsed) / float64(s.fadeDuration)
		}
	case PhaseHolding:
		if s.elapsed >= s.holdDuration {
			s.active = false
			s.phase = PhaseCompleted
			if s.onComplete != nil {
				s.onComplete()
			}
		}
	}

	s.alpha = clamp01(s.alpha)

	// The completion callback may already have disposed the image.
	if s.image != nil {
		s.displayRect = fitRect(s.device.ViewportSize(), s.image.Bounds().Size())
	}
}

// Draw clears screen to black and draws the logo with the current opacity.
// It performs the whole draw itself, one DrawImage call with nearest filtering.
//
// It panics if the splash screen is inactive or disposed.
func (s *SplashScreen) Draw(screen Renderer) {
	if screen == nil {
		panic("splash: screen cannot be nil")
	}
	if !s.active {
		panic("splash: Draw called when the splash screen is no longer active")
	}
	if s.disposed {
		panic("splash: Draw called after Dispose")
	}

	screen.Fill(config.SplashClearColor)

	if s.image == nil || s.displayRect.Empty() {
		return
	}

	size := s.image.Bounds().Size()
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(
		float64(s.displayRect.Dx())/float64(size.X),
		float64(s.displayRect.Dy())/float64(size.Y),
	)
	op.GeoM.Translate(float64(s.displayRect.Min.X), float64(s.displayRect.Min.Y))
	op.ColorScale.ScaleAlpha(float32(s.alpha))
	screen.DrawImage(s.image, op)
}

// Dispose releases the logo. It is safe to call more than once.
func (s *SplashScreen) Dispose() {
	if s.disposed {
		return
	}
	if s.image != nil {
		s.image.Deallocate()
		s.image = nil
	}
	s.disposed = true
}

// IsActive reports whether the splash screen still needs Update and Draw calls.
func (s *SplashScreen) IsActive() bool { return s.active }

// IsDisposed reports whether Dispose has been called.
func (s *SplashScreen) IsDisposed() bool { return s.disposed }

// IsLoaded reports whether the logo is loaded.
func (s *SplashScreen) IsLoaded() bool { return s.image != nil }

// Phase returns the current phase.
func (s *SplashScreen) Phase() Phase { return s.phase }

// Alpha returns the current logo opacity in [0, 1].
func (s *SplashScreen) Alpha() float64 { return s.alpha }

// Elapsed returns the time spent in the current phase.
func (s *SplashScreen) Elapsed() time.Duration { return s.elapsed }

// DisplayRect returns the area the logo is drawn into, as computed by the last Update.
func (s *SplashScreen) DisplayRect() image.Rectangle { return s.displayRect }

// FadeDuration returns the configured fade-in duration.
func (s *SplashScreen) FadeDuration() time.Duration { return s.fadeDuration }

// HoldDuration returns the configured hold duration.
func (s *SplashScreen) HoldDuration() time.Duration { return s.holdDuration }

// fitRect scales content uniformly to fit inside viewport and centers it.
// The limiting axis fills the viewport exactly; the other one is rounded down.
func fitRect(viewport, content image.Point) image.Rectangle {
	if content.X <= 0 || content.Y <= 0 || viewport.X <= 0 || viewport.Y <= 0 {
		return image.Rectangle{}
	}

	// scale = min(viewport.X/content.X, viewport.Y/content.Y), compared without division
	w, h := viewport.X, viewport.Y
	if viewport.X*content.Y <= viewport.Y*content.X {
		h = content.Y * viewport.X / content.X
	} else {
		w = content.X * viewport.Y / content.Y
	}

	x := (viewport.X - w) / 2
	y := (viewport.Y - h) / 2

	return image.Rect(x, y, x+w, y+h)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
