package game

import (
	"image"
	"testing"
)

func TestDeviceViewport(t *testing.T) {
	d := NewDevice(newTestResourceManager(t), 1280, 720)

	if got := d.ViewportSize(); got != image.Pt(1280, 720) {
		t.Errorf("ViewportSize() = %v, want (1280,720)", got)
	}

	d.SetViewportSize(800, 600)
	if got := d.ViewportSize(); got != image.Pt(800, 600) {
		t.Errorf("ViewportSize() after resize = %v, want (800,600)", got)
	}

	// 最小化时的 0x0 尺寸被忽略
	d.SetViewportSize(0, 0)
	if got := d.ViewportSize(); got != image.Pt(800, 600) {
		t.Errorf("ViewportSize() after zero resize = %v, want (800,600)", got)
	}
}

func TestDeviceLoadsResourceStream(t *testing.T) {
	d := NewDevice(newTestResourceManager(t), 1280, 720)

	rc, err := d.OpenResource("IMAGE_SPLASH_LOGO")
	if err != nil {
		t.Fatalf("OpenResource() error: %v", err)
	}
	defer rc.Close()

	img, err := d.LoadImage(rc)
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	if img.Bounds().Dx() != 20 {
		t.Errorf("image width = %d, want 20", img.Bounds().Dx())
	}
	if d.ResourceManager() == nil {
		t.Error("ResourceManager() returned nil")
	}
}
