package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// MockDisposableScene additionally records Dispose calls.
type MockDisposableScene struct {
	MockScene
	disposeCount int
}

func (m *MockDisposableScene) Dispose() {
	m.disposeCount++
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.GetCurrentScene() != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update and Draw handle a nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016) // Should not panic
	sm.Draw(ebiten.NewImage(800, 600))
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	screen := ebiten.NewImage(800, 600)
	sm.Draw(screen)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerDisposesPreviousScene verifies that switching away disposes the old scene once.
func TestSceneManagerDisposesPreviousScene(t *testing.T) {
	sm := NewSceneManager()
	first := &MockDisposableScene{}
	second := &MockScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(first) // same scene, no dispose
	if first.disposeCount != 0 {
		t.Fatalf("dispose count = %d after re-selecting the same scene, want 0", first.disposeCount)
	}

	sm.SwitchTo(second)
	if first.disposeCount != 1 {
		t.Errorf("dispose count = %d, want 1", first.disposeCount)
	}
	if sm.GetCurrentScene() != second {
		t.Error("expected second scene to be active")
	}
}

// TestSceneManagerSwitchWith verifies factory based switching.
func TestSceneManagerSwitchWith(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	sm.SwitchTo(first)

	sm.SwitchWith(nil)
	if sm.GetCurrentScene() != first {
		t.Error("nil factory should keep the current scene")
	}

	sm.SwitchWith(func() Scene { return nil })
	if sm.GetCurrentScene() != first {
		t.Error("factory returning nil should keep the current scene")
	}

	next := &MockScene{}
	sm.SwitchWith(func() Scene { return next })
	if sm.GetCurrentScene() != next {
		t.Error("SwitchWith did not switch to the factory's scene")
	}
}
