// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"time"

	"github.com/gonewx/splash/pkg/config"
	"github.com/gonewx/splash/pkg/game"
	"github.com/gonewx/splash/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 启动配置文件路径，相对于资源文件系统（只能选择打包进 assets/ 的文件），
	// 为空则使用 assets/config/app.yaml
	ConfigPath string
	// FadeOverride 覆盖配置文件中的淡入时长，负值表示不覆盖
	FadeOverride time.Duration
	// HoldOverride 覆盖配置文件中的停留时长，负值表示不覆盖
	HoldOverride time.Duration
	// SkipSplash 跳过启动画面，直接进入标题场景
	SkipSplash bool
	// DisableSettings 不使用 gdata 持久化设置（降级模式）
	DisableSettings bool
}

// DefaultConfig 返回默认启动配置
func DefaultConfig() Config {
	return Config{
		ConfigPath:   config.AppConfigPath,
		FadeOverride: -1,
		HoldOverride: -1,
	}
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	resourceManager *game.ResourceManager
	settingsManager *game.SettingsManager
	device          *game.Device
	appConfig       *config.AppConfig
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// fsys 是资源文件系统，路径以 "assets/" 开头（通常为 embedded.FS()）。
func NewApp(cfg Config, fsys fs.FS) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 创建资源管理器
	resourceManager := game.NewResourceManager(fsys)
	if err := resourceManager.LoadResourceConfig(config.ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	// 加载启动配置
	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.AppConfigPath
	}
	appConfig, err := config.LoadAppConfig(fsys, configPath)
	if err != nil {
		return nil, fmt.Errorf("启动配置加载失败: %w", err)
	}
	appConfig.OverrideDurations(cfg.FadeOverride, cfg.HoldOverride)
	log.Printf("[App] Splash timing: fade=%v hold=%v", appConfig.FadeDuration(), appConfig.HoldDuration())

	// 设置管理器（gdata 不可用时降级为内存模式）
	var settingsManager *game.SettingsManager
	if cfg.DisableSettings {
		settingsManager, _ = game.NewSettingsManager(nil)
	} else {
		storage, err := game.OpenSettingsStorage(config.SettingsAppName)
		if err != nil {
			log.Printf("[App] Warning: %v (settings will not be persisted)", err)
		}
		settingsManager, _ = game.NewSettingsManager(storage)
	}

	width, height := settingsManager.WindowSize(appConfig.Window.Width, appConfig.Window.Height)
	device := game.NewDevice(resourceManager, width, height)

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	if cfg.SkipSplash {
		log.Printf("[App] SkipSplash enabled, starting at title scene")
		sceneManager.SwitchTo(scenes.NewTitleScene())
	} else {
		splashScene := scenes.NewSplashScene(device, sceneManager,
			appConfig.FadeDuration(), appConfig.HoldDuration(), scenes.NewTitleSceneFactory())
		sceneManager.SwitchTo(splashScene)
	}

	return &App{
		sceneManager:    sceneManager,
		resourceManager: resourceManager,
		settingsManager: settingsManager,
		device:          device,
		appConfig:       appConfig,
		verbose:         cfg.Verbose,
	}, nil
}

// ConfigureWindow 应用窗口设置（标题、尺寸、可调整大小、全屏）
// 必须在 ebiten.RunGame 之前调用
func (a *App) ConfigureWindow() {
	width, height := a.device.ViewportSize().X, a.device.ViewportSize().Y
	ebiten.SetWindowTitle(a.appConfig.Window.Title)
	ebiten.SetWindowSize(width, height)
	if a.appConfig.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if a.settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	log.Printf("[App] Window %dx%d %q", width, height, a.appConfig.Window.Title)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[App] Escape pressed, exiting")
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			width, height := a.settingsManager.WindowSize(a.appConfig.Window.Width, a.appConfig.Window.Height)
			ebiten.SetWindowSize(width, height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", width, height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.settingsManager.SetFullscreen(false)
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
			a.settingsManager.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / config.TickRate)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
//
// 逻辑尺寸跟随窗口尺寸，启动画面每帧按视口重新计算 Logo 区域。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.device.SetViewportSize(outsideWidth, outsideHeight)
	if !ebiten.IsFullscreen() {
		a.settingsManager.SetWindowSize(outsideWidth, outsideHeight)
	}
	size := a.device.ViewportSize()
	return size.X, size.Y
}

// SaveOnExit 在程序退出时保存设置并释放资源
//
// 返回 true 表示保存成功或无需保存
func (a *App) SaveOnExit() bool {
	if scene, ok := a.sceneManager.GetCurrentScene().(game.Disposable); ok {
		scene.Dispose()
	}
	a.resourceManager.Dispose()

	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Failed to save settings: %v", err)
		return false
	}
	return true
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetDevice 返回图形设备
func (a *App) GetDevice() *game.Device {
	return a.device
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
