package systems

import (
	"math/rand"

	"github.com/gonewx/spritelab/pkg/components"
	"github.com/gonewx/spritelab/pkg/ecs"
	"github.com/gonewx/spritelab/pkg/types"
)

// SpawnBounds 粒子生成区域（矩形，左上角 + 宽高）
type SpawnBounds struct {
	X, Y          int
	Width, Height int
}

// SchedulerSystem 每步驱动三个独立的计时关注点（固定顺序）：
//
//  1. 冷却倒计时：剩余值 > 0 时递减 1，不会低于 0
//  2. 状态自动循环：按 tick mod 周期划分三个等宽窗口，目标状态
//     与当前不同时触发切换；通过自动循环进入 Jumping 且冷却为 0 时
//     装填冷却（冷却进行中不叠加、不刷新）
//  3. 生成计时器：到期时在配置区域内随机生成一个粒子
//
// 顺序的意义仅在于：自动循环触发的切换会被同一步的冷却装填逻辑观察到。
// 随机源由构造方注入，保证调度本身可复现、可测试。
type SchedulerSystem struct {
	entityManager   *ecs.EntityManager
	animationSystem *CharacterAnimationSystem
	particleSystem  *ParticleSystem

	rng *rand.Rand

	cyclePeriodTicks uint64
	bounds           SpawnBounds
}

// NewSchedulerSystem 创建调度系统
func NewSchedulerSystem(
	em *ecs.EntityManager,
	animSys *CharacterAnimationSystem,
	particleSys *ParticleSystem,
	rng *rand.Rand,
	cyclePeriodTicks uint64,
	bounds SpawnBounds,
) *SchedulerSystem {
	return &SchedulerSystem{
		entityManager:    em,
		animationSystem:  animSys,
		particleSystem:   particleSys,
		rng:              rng,
		cyclePeriodTicks: cyclePeriodTicks,
		bounds:           bounds,
	}
}

// Update 执行一步调度
// 同一步内所有判断使用同一个 tick 值
func (s *SchedulerSystem) Update(currentTick types.Tick) {
	s.updateCooldowns()
	s.updateAutoCycle(currentTick)
	s.updateSpawnTimers(currentTick)
}

// updateCooldowns 冷却倒计时，每步最多递减 1
func (s *SchedulerSystem) updateCooldowns() {
	entities := ecs.GetEntitiesWith1[*components.CooldownComponent](s.entityManager)

	for _, id := range entities {
		cooldown, ok := ecs.GetComponent[*components.CooldownComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if cooldown.RemainingTicks > 0 {
			cooldown.RemainingTicks--
		}
	}
}

// TargetState 返回自动循环在当前 tick 的目标状态
//
// 周期被划分为三个等宽窗口：前 1/3 Idle，中 1/3 Walking，后 1/3 Jumping
// （默认周期 360 tick，60 TPS 下即 <2s / <4s / 其余）。
func (s *SchedulerSystem) TargetState(currentTick types.Tick) types.CharacterState {
	phase := uint64(currentTick) % s.cyclePeriodTicks
	window := s.cyclePeriodTicks / 3

	switch {
	case phase < window:
		return types.StateIdle
	case phase < 2*window:
		return types.StateWalking
	default:
		return types.StateJumping
	}
}

// updateAutoCycle 状态自动循环驱动
//
// 演示驱动：真实游戏里这个职责属于玩法/输入层，这里保留的是
// "相位取模"这个可复用的计时模式。进入 Jumping 同时装填冷却
// 也是演示耦合（跳跃即视为使用了技能）。
func (s *SchedulerSystem) updateAutoCycle(currentTick types.Tick) {
	target := s.TargetState(currentTick)

	entities := ecs.GetEntitiesWith1[*components.CharacterAnimationComponent](s.entityManager)

	for _, id := range entities {
		anim, ok := ecs.GetComponent[*components.CharacterAnimationComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if anim.State == target {
			continue
		}

		s.animationSystem.Transition(id, target, currentTick)

		// 进入 Jumping 时装填冷却，仅当冷却已归零（防止叠加/刷新）
		if target == types.StateJumping {
			cooldown, ok := ecs.GetComponent[*components.CooldownComponent](s.entityManager, id)
			if ok && cooldown.RemainingTicks == 0 {
				cooldown.RemainingTicks = cooldown.DurationTicks
			}
		}
	}
}

// updateSpawnTimers 生成计时器
//
// 触发后 LastFireTick 直接设为当前 tick，吞掉超出部分，
// 同一个 tick 不会触发两次，错过的 tick 也不会补发。
func (s *SchedulerSystem) updateSpawnTimers(currentTick types.Tick) {
	entities := ecs.GetEntitiesWith1[*components.SpawnTimerComponent](s.entityManager)

	for _, id := range entities {
		timer, ok := ecs.GetComponent[*components.SpawnTimerComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if currentTick.Since(timer.LastFireTick) < timer.IntervalTicks {
			continue
		}

		x := s.bounds.X + s.rng.Intn(s.bounds.Width)
		y := s.bounds.Y + s.rng.Intn(s.bounds.Height)
		s.particleSystem.Spawn(x, y, currentTick)

		timer.LastFireTick = currentTick
	}
}

// TicksUntilNextSpawn 返回距下次生成还剩的 tick 数（只读）
func (s *SchedulerSystem) TicksUntilNextSpawn(id ecs.EntityID, currentTick types.Tick) uint64 {
	timer, ok := ecs.GetComponent[*components.SpawnTimerComponent](s.entityManager, id)
	if !ok {
		return 0
	}

	elapsed := currentTick.Since(timer.LastFireTick)
	if elapsed >= timer.IntervalTicks {
		return 0
	}
	return timer.IntervalTicks - elapsed
}
