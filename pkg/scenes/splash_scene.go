package scenes

import (
	"log"
	"time"

	"github.com/gonewx/splash/pkg/config"
	"github.com/gonewx/splash/pkg/game"
	"github.com/gonewx/splash/pkg/splash"
	"github.com/hajimehoshi/ebiten/v2"
)

// SplashScene shows the "made with" splash screen and then switches to the
// scene produced by next.
//
// If the logo cannot be loaded the splash is skipped: the first Update switches
// straight to the next scene.
type SplashScene struct {
	sceneManager *game.SceneManager
	next         game.SceneFactory

	splash   *splash.SplashScreen
	finished bool // splash completed or skipped
}

// NewSplashScene creates the splash scene and loads the logo.
func NewSplashScene(device splash.Device, sm *game.SceneManager, fade, hold time.Duration, next game.SceneFactory) *SplashScene {
	scene := &SplashScene{
		sceneManager: sm,
		next:         next,
		splash:       splash.New(device, fade, hold),
	}

	if err := scene.splash.LoadContent(); err != nil {
		log.Printf("[SplashScene] Failed to load splash logo: %v (skipping splash)", err)
		scene.splash.Dispose()
		scene.finished = true
		return scene
	}

	// 完成时立即释放 Logo
	scene.splash.SetOnComplete(scene.onComplete)

	log.Printf("[SplashScene] Splash started (fade=%v, hold=%v)", fade, hold)
	return scene
}

func (s *SplashScene) onComplete() {
	s.splash.Dispose()
	s.finished = true
	log.Printf("[SplashScene] Splash completed")
}

// Update advances the splash screen. deltaTime is in seconds.
func (s *SplashScene) Update(deltaTime float64) {
	if !s.finished && s.splash.IsActive() {
		s.splash.Update(secondsToDuration(deltaTime))
	}

	if s.finished {
		s.sceneManager.SwitchWith(s.next)
	}
}

// Draw renders the splash screen while it is active.
func (s *SplashScene) Draw(screen *ebiten.Image) {
	if s.finished || !s.splash.IsActive() {
		screen.Fill(config.SplashClearColor)
		return
	}
	s.splash.Draw(screen)
}

// Dispose releases the splash screen. Called by SceneManager when switching away.
func (s *SplashScene) Dispose() {
	s.splash.Dispose()
}

// Splash returns the underlying splash screen.
func (s *SplashScene) Splash() *splash.SplashScreen {
	return s.splash
}

// IsFinished reports whether the splash completed or was skipped.
func (s *SplashScene) IsFinished() bool {
	return s.finished
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
