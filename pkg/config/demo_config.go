// Package config 提供演示程序的配置加载和校验
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// TimingConfig 计时配置
// 所有时长以 tick 为单位（60 TPS 下 60 tick = 1 秒）
type TimingConfig struct {
	TPS                   int     `yaml:"tps"`                // 目标 TPS（Ticks Per Second）
	FrameDurationTicks    uint64  `yaml:"frame_duration"`     // 帧推进间隔
	JumpDurationTicks     uint64  `yaml:"jump_duration"`      // 跳跃总时长
	JumpHeight            float64 `yaml:"jump_height"`        // 跳跃最高点偏移（像素）
	CooldownTicks         uint64  `yaml:"cooldown"`           // 技能冷却时长
	SpawnIntervalTicks    uint64  `yaml:"spawn_interval"`     // 粒子生成间隔
	ParticleLifetimeTicks uint64  `yaml:"particle_lifetime"`  // 粒子生命周期
	CyclePeriodTicks      uint64  `yaml:"cycle_period"`       // 状态自动循环周期
}

// SpawnBoundsConfig 粒子生成区域（矩形，左上角 + 宽高）
type SpawnBoundsConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SheetConfig 精灵图单元格配置
type SheetConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// CharacterConfig 角色在屏幕上的基准位置
type CharacterConfig struct {
	BaseX int `yaml:"base_x"`
	BaseY int `yaml:"base_y"`
}

// DemoConfig 演示程序完整配置
type DemoConfig struct {
	Window      WindowConfig      `yaml:"window"`
	Timing      TimingConfig      `yaml:"timing"`
	SpawnBounds SpawnBoundsConfig `yaml:"spawn_bounds"`
	Sheet       SheetConfig       `yaml:"sheet"`
	Character   CharacterConfig   `yaml:"character"`
}

// DefaultConfig 返回带默认值的配置
func DefaultConfig() *DemoConfig {
	return &DemoConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "SpriteLab - 角色动画演示",
		},
		Timing: TimingConfig{
			TPS:                   60,
			FrameDurationTicks:    8,
			JumpDurationTicks:     60,
			JumpHeight:            40,
			CooldownTicks:         120,
			SpawnIntervalTicks:    180,
			ParticleLifetimeTicks: 180,
			CyclePeriodTicks:      360,
		},
		SpawnBounds: SpawnBoundsConfig{
			X:      100,
			Y:      100,
			Width:  600,
			Height: 400,
		},
		Sheet: SheetConfig{
			CellWidth:  48,
			CellHeight: 48,
		},
		Character: CharacterConfig{
			BaseX: 400,
			BaseY: 420,
		},
	}
}

// LoadConfig 从文件加载配置
// 文件不存在时返回默认配置（演示程序无配置文件也能运行）
func LoadConfig(configPath string) (*DemoConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults 为零值字段填充默认值
func applyDefaults(cfg *DemoConfig) {
	def := DefaultConfig()

	if cfg.Window.Width == 0 {
		cfg.Window.Width = def.Window.Width
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = def.Window.Height
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = def.Window.Title
	}
	if cfg.Timing.TPS == 0 {
		cfg.Timing.TPS = def.Timing.TPS
	}
	if cfg.Timing.FrameDurationTicks == 0 {
		cfg.Timing.FrameDurationTicks = def.Timing.FrameDurationTicks
	}
	if cfg.Timing.JumpDurationTicks == 0 {
		cfg.Timing.JumpDurationTicks = def.Timing.JumpDurationTicks
	}
	if cfg.Timing.JumpHeight == 0 {
		cfg.Timing.JumpHeight = def.Timing.JumpHeight
	}
	if cfg.Timing.CooldownTicks == 0 {
		cfg.Timing.CooldownTicks = def.Timing.CooldownTicks
	}
	if cfg.Timing.SpawnIntervalTicks == 0 {
		cfg.Timing.SpawnIntervalTicks = def.Timing.SpawnIntervalTicks
	}
	if cfg.Timing.ParticleLifetimeTicks == 0 {
		cfg.Timing.ParticleLifetimeTicks = def.Timing.ParticleLifetimeTicks
	}
	if cfg.Timing.CyclePeriodTicks == 0 {
		cfg.Timing.CyclePeriodTicks = def.Timing.CyclePeriodTicks
	}
	if cfg.SpawnBounds.Width == 0 {
		cfg.SpawnBounds = def.SpawnBounds
	}
	if cfg.Sheet.CellWidth == 0 {
		cfg.Sheet.CellWidth = def.Sheet.CellWidth
	}
	if cfg.Sheet.CellHeight == 0 {
		cfg.Sheet.CellHeight = def.Sheet.CellHeight
	}
	if cfg.Character.BaseX == 0 {
		cfg.Character.BaseX = def.Character.BaseX
	}
	if cfg.Character.BaseY == 0 {
		cfg.Character.BaseY = def.Character.BaseY
	}
}

// Validate 校验配置合法性
// 零时长会让计时器每步触发或帧推进死循环，必须在构造期拒绝
func (cfg *DemoConfig) Validate() error {
	if cfg.Timing.FrameDurationTicks == 0 {
		return fmt.Errorf("配置错误: frame_duration 必须大于 0")
	}
	if cfg.Timing.JumpDurationTicks == 0 {
		return fmt.Errorf("配置错误: jump_duration 必须大于 0")
	}
	if cfg.Timing.CooldownTicks == 0 {
		return fmt.Errorf("配置错误: cooldown 必须大于 0")
	}
	if cfg.Timing.SpawnIntervalTicks == 0 {
		return fmt.Errorf("配置错误: spawn_interval 必须大于 0")
	}
	if cfg.Timing.ParticleLifetimeTicks == 0 {
		return fmt.Errorf("配置错误: particle_lifetime 必须大于 0")
	}
	if cfg.Timing.CyclePeriodTicks == 0 {
		return fmt.Errorf("配置错误: cycle_period 必须大于 0")
	}
	if cfg.SpawnBounds.Width <= 0 || cfg.SpawnBounds.Height <= 0 {
		return fmt.Errorf("配置错误: spawn_bounds 宽高必须大于 0")
	}
	if cfg.Sheet.CellWidth <= 0 || cfg.Sheet.CellHeight <= 0 {
		return fmt.Errorf("配置错误: sheet 单元格宽高必须大于 0")
	}
	return nil
}
