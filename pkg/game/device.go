package game

import (
	"image"
	"io"

	"github.com/hajimehoshi/ebiten/v2"
)

// Device is the graphics context handed to widgets such as the splash screen.
// It reports the current viewport size and loads images through a ResourceManager.
//
// The viewport is updated from ebiten.Game.Layout, so widgets that read it every
// frame follow window resizes.
type Device struct {
	resourceManager *ResourceManager
	viewport        image.Point
}

// NewDevice creates a Device with an initial viewport size.
func NewDevice(rm *ResourceManager, width, height int) *Device {
	return &Device{
		resourceManager: rm,
		viewport:        image.Pt(width, height),
	}
}

// ViewportSize returns the current viewport size in pixels.
func (d *Device) ViewportSize() image.Point {
	return d.viewport
}

// SetViewportSize records a new viewport size. Non-positive sizes are ignored
// (minimized windows report 0x0).
func (d *Device) SetViewportSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	d.viewport = image.Pt(width, height)
}

// OpenResource opens a resource stream by its configured ID.
func (d *Device) OpenResource(resourceID string) (io.ReadCloser, error) {
	return d.resourceManager.OpenResource(resourceID)
}

// LoadImage decodes an image from r. The caller owns the result.
func (d *Device) LoadImage(r io.Reader) (*ebiten.Image, error) {
	return d.resourceManager.DecodeImage(r)
}

// ResourceManager returns the underlying resource manager.
func (d *Device) ResourceManager() *ResourceManager {
	return d.resourceManager
}
