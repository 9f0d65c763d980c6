package game

import (
	"fmt"
	"math/rand"

	"github.com/gonewx/spritelab/pkg/components"
	"github.com/gonewx/spritelab/pkg/config"
	"github.com/gonewx/spritelab/pkg/ecs"
	"github.com/gonewx/spritelab/pkg/systems"
	"github.com/gonewx/spritelab/pkg/types"
)

// World 拥有演示的全部可变状态：时钟、实体管理器和各系统
//
// 没有任何进程级单例，World 由调用方显式构造并传递。
// 单线程协作模型：外部驱动每 tick 调用一次 Step，Step 跑完之前
// 不会有下一个 tick，也不会有渲染读取，因此不需要加锁。
type World struct {
	cfg *config.DemoConfig

	entityManager *ecs.EntityManager
	clock         *Clock

	animationSystem *systems.CharacterAnimationSystem
	particleSystem  *systems.ParticleSystem
	schedulerSystem *systems.SchedulerSystem

	// characterID 演示角色实体（动画 + 冷却 + 生成计时器都挂在它上面）
	characterID ecs.EntityID
}

// NewWorld 构造演示世界
//
// 配置在这里做前置校验：零时长会让计时器每步触发或帧推进
// 死循环，必须在构造期拒绝，而不是运行中才暴露。
func NewWorld(cfg *config.DemoConfig, rng *rand.Rand) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("世界构造失败: %w", err)
	}

	em := ecs.NewEntityManager()

	animSys := systems.NewCharacterAnimationSystem(em, cfg.Timing.JumpDurationTicks, cfg.Timing.JumpHeight)
	particleSys := systems.NewParticleSystem(em, cfg.Timing.ParticleLifetimeTicks)
	schedSys := systems.NewSchedulerSystem(em, animSys, particleSys, rng, cfg.Timing.CyclePeriodTicks, systems.SpawnBounds{
		X:      cfg.SpawnBounds.X,
		Y:      cfg.SpawnBounds.Y,
		Width:  cfg.SpawnBounds.Width,
		Height: cfg.SpawnBounds.Height,
	})

	// 创建演示角色：初始 Idle，冷却空闲，生成计时器从 0 起算
	characterID := em.CreateEntity()
	em.AddComponent(characterID, &components.CharacterAnimationComponent{
		State:              types.StateIdle,
		FrameIndex:         0,
		FrameDurationTicks: cfg.Timing.FrameDurationTicks,
	})
	em.AddComponent(characterID, &components.CooldownComponent{
		RemainingTicks: 0,
		DurationTicks:  cfg.Timing.CooldownTicks,
	})
	em.AddComponent(characterID, &components.SpawnTimerComponent{
		LastFireTick:  0,
		IntervalTicks: cfg.Timing.SpawnIntervalTicks,
	})

	return &World{
		cfg:             cfg,
		entityManager:   em,
		clock:           NewClock(),
		animationSystem: animSys,
		particleSystem:  particleSys,
		schedulerSystem: schedSys,
		characterID:     characterID,
	}, nil
}

// Step 执行一个模拟步
//
// 每步开始时钟恰好推进一次，同一个 tick 值贯穿整步：
// 冷却递减、状态切换判断、生成和清理看到的都是同一个时刻。
// 清理在生成之后：本步刚生成的粒子年龄为 0，至少存活一次渲染。
func (w *World) Step() {
	tick := w.clock.Advance()

	w.schedulerSystem.Update(tick)
	w.animationSystem.Update(tick)
	w.particleSystem.Prune(tick)
}

// 以下均为只读访问器，供渲染层和验证工具使用

// CurrentTick 返回最近一步的 tick
func (w *World) CurrentTick() types.Tick {
	return w.clock.Current()
}

// CurrentState 返回角色当前状态
func (w *World) CurrentState() types.CharacterState {
	anim, ok := ecs.GetComponent[*components.CharacterAnimationComponent](w.entityManager, w.characterID)
	if !ok {
		return types.StateIdle
	}
	return anim.State
}

// FrameIndex 返回角色当前帧索引
func (w *World) FrameIndex() int {
	anim, ok := ecs.GetComponent[*components.CharacterAnimationComponent](w.entityManager, w.characterID)
	if !ok {
		return 0
	}
	return anim.FrameIndex
}

// FrameCount 返回当前状态的帧数
func (w *World) FrameCount() int {
	return w.CurrentState().FrameCount()
}

// CooldownRemaining 返回剩余冷却 tick 数
func (w *World) CooldownRemaining() uint64 {
	cooldown, ok := ecs.GetComponent[*components.CooldownComponent](w.entityManager, w.characterID)
	if !ok {
		return 0
	}
	return cooldown.RemainingTicks
}

// CooldownActive 返回冷却是否进行中
func (w *World) CooldownActive() bool {
	return w.CooldownRemaining() > 0
}

// TicksUntilNextSpawn 返回距下次粒子生成还剩的 tick 数
func (w *World) TicksUntilNextSpawn() uint64 {
	return w.schedulerSystem.TicksUntilNextSpawn(w.characterID, w.clock.Current())
}

// ParticleCount 返回当前存活粒子数量
func (w *World) ParticleCount() int {
	return w.particleSystem.Count()
}

// JumpOffset 返回角色当前的垂直跳跃偏移
func (w *World) JumpOffset() float64 {
	return w.animationSystem.JumpOffset(w.characterID, w.clock.Current())
}

// EntityManager 返回实体管理器（渲染系统构造用）
func (w *World) EntityManager() *ecs.EntityManager {
	return w.entityManager
}

// AnimationSystem 返回动画系统（渲染系统构造用）
func (w *World) AnimationSystem() *systems.CharacterAnimationSystem {
	return w.animationSystem
}

// SchedulerSystem 返回调度系统（渲染系统构造用）
func (w *World) SchedulerSystem() *systems.SchedulerSystem {
	return w.schedulerSystem
}

// Config 返回世界配置
func (w *World) Config() *config.DemoConfig {
	return w.cfg
}
