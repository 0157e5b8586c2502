package scenes

import (
	"fmt"

	"github.com/gonewx/splash/pkg/config"
	"github.com/gonewx/splash/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// TitleScene is the placeholder game shown after the splash screen.
type TitleScene struct {
	elapsedTime float64 // Elapsed time since scene start, in seconds
}

// NewTitleScene creates a new title scene.
func NewTitleScene() *TitleScene {
	return &TitleScene{}
}

// NewTitleSceneFactory returns a factory for SceneManager.SwitchWith.
func NewTitleSceneFactory() game.SceneFactory {
	return func() game.Scene {
		return NewTitleScene()
	}
}

// Update updates the title scene logic.
func (s *TitleScene) Update(deltaTime float64) {
	s.elapsedTime += deltaTime
}

// Draw renders the title scene.
func (s *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.TitleClearColor)
	ebitenutil.DebugPrint(screen, s.hint())
}

func (s *TitleScene) hint() string {
	return fmt.Sprintf("%s\nF11: toggle fullscreen  Esc: quit\n%.1fs", config.DefaultWindowTitle, s.elapsedTime)
}
