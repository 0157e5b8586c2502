package config

import (
	"fmt"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig 启动配置
//
// 配置文件位置: assets/config/app.yaml
type AppConfig struct {
	// Window 窗口配置
	Window WindowConfig `yaml:"window"`

	// Splash 启动画面时长配置
	Splash SplashTiming `yaml:"splash"`

	// 命令行覆盖的时长，保留完整精度（不经过毫秒取整）
	fadeOverride *time.Duration
	holdOverride *time.Duration
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

// SplashTiming 启动画面时长（毫秒）
type SplashTiming struct {
	// FadeMs 淡入时长，0 表示第一帧即完全不透明
	FadeMs int `yaml:"fadeMs"`

	// HoldMs 完全显示后的停留时长
	HoldMs int `yaml:"holdMs"`
}

// DefaultAppConfig 返回默认启动配置
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Title:     DefaultWindowTitle,
			Width:     GameWindowWidth,
			Height:    GameWindowHeight,
			Resizable: true,
		},
		Splash: SplashTiming{
			FadeMs: int(DefaultFadeDuration / time.Millisecond),
			HoldMs: int(DefaultHoldDuration / time.Millisecond),
		},
	}
}

// LoadAppConfig 从文件系统加载启动配置
//
// 未出现在文件中的字段保留默认值。
//
// 参数:
//   - fsys: 资源文件系统（通常为 embedded.FS()）
//   - path: 配置文件路径（如 "assets/config/app.yaml"）
//
// 返回:
//   - *AppConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadAppConfig(fsys fs.FS, path string) (*AppConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read app config: %w", err)
	}
	return ParseAppConfig(data)
}

// ParseAppConfig 解析 YAML 格式的启动配置
func ParseAppConfig(data []byte) (*AppConfig, error) {
	config := DefaultAppConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查配置值是否在合理范围内：
//   - 窗口尺寸必须为正
//   - 淡入和停留时长不能为负
func (c *AppConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Splash.FadeMs < 0 {
		return fmt.Errorf("fadeMs must be >= 0, got %d", c.Splash.FadeMs)
	}
	if c.Splash.HoldMs < 0 {
		return fmt.Errorf("holdMs must be >= 0, got %d", c.Splash.HoldMs)
	}
	return nil
}

// OverrideDurations 用命令行参数覆盖淡入和停留时长，负值表示保留配置文件中的值
func (c *AppConfig) OverrideDurations(fade, hold time.Duration) {
	if fade >= 0 {
		c.fadeOverride = &fade
	}
	if hold >= 0 {
		c.holdOverride = &hold
	}
}

// FadeDuration 返回淡入时长
func (c *AppConfig) FadeDuration() time.Duration {
	if c.fadeOverride != nil {
		return *c.fadeOverride
	}
	return time.Duration(c.Splash.FadeMs) * time.Millisecond
}

// HoldDuration 返回停留时长
func (c *AppConfig) HoldDuration() time.Duration {
	if c.holdOverride != nil {
		return *c.holdOverride
	}
	return time.Duration(c.Splash.HoldMs) * time.Millisecond
}
