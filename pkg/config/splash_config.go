package config

import (
	"image/color"
	"time"
)

// Splash 启动画面配置常量

const (
	// GameWindowWidth 默认窗口宽度
	GameWindowWidth = 1280

	// GameWindowHeight 默认窗口高度
	GameWindowHeight = 720

	// DefaultWindowTitle 默认窗口标题
	DefaultWindowTitle = "Made with Ebitengine"

	// DefaultFadeDuration Logo 淡入时长
	DefaultFadeDuration = 1500 * time.Millisecond

	// DefaultHoldDuration Logo 完全显示后的停留时长
	DefaultHoldDuration = 1500 * time.Millisecond

	// SplashLogoResourceID 内置 Logo 的资源 ID（在 resources.yaml 中定义）
	SplashLogoResourceID = "IMAGE_SPLASH_LOGO"

	// ResourceConfigPath 资源配置文件路径
	ResourceConfigPath = "assets/config/resources.yaml"

	// AppConfigPath 启动配置文件路径
	AppConfigPath = "assets/config/app.yaml"

	// SettingsAppName gdata 存储使用的应用名
	SettingsAppName = "gonewx_splash"

	// TickRate 每秒逻辑帧数，与 ebiten 默认 TPS 一致
	TickRate = 60
)

// SplashClearColor 启动画面背景色（不透明黑）
var SplashClearColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// TitleClearColor 启动画面结束后标题场景的背景色
var TitleClearColor = color.RGBA{R: 100, G: 149, B: 237, A: 255}
