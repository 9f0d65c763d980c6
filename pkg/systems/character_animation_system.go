// Package systems 包含所有游戏逻辑系统
// 系统从 EntityManager 查询组件并驱动状态变化，自身不持有可变游戏状态
package systems

import (
	"log"

	"github.com/gonewx/spritelab/pkg/components"
	"github.com/gonewx/spritelab/pkg/ecs"
	"github.com/gonewx/spritelab/pkg/types"
	"github.com/gonewx/spritelab/pkg/utils"
)

// CharacterAnimationSystem 管理角色动画状态机
//
// 状态机不自带时钟：每步由外部驱动调用 Update 并传入当前 tick。
// 同一步内所有判断使用同一个 tick 值。
type CharacterAnimationSystem struct {
	entityManager *ecs.EntityManager

	// 跳跃参数（构造期校验为正值）
	jumpDurationTicks uint64
	jumpHeight        float64
}

// NewCharacterAnimationSystem 创建角色动画系统
func NewCharacterAnimationSystem(em *ecs.EntityManager, jumpDurationTicks uint64, jumpHeight float64) *CharacterAnimationSystem {
	return &CharacterAnimationSystem{
		entityManager:     em,
		jumpDurationTicks: jumpDurationTicks,
		jumpHeight:        jumpHeight,
	}
}

// Transition 切换角色到新状态
//
// 同状态切换是无操作：重复进入当前状态不能重置帧序列。
// 状态真正变化时 FrameIndex 归零、LastFrameChangeTick 重置为当前 tick，
// 进入 Jumping 时额外记录 JumpStartTick。
// 这是 FrameIndex 在自然回绕之外唯一归零的途径。
func (s *CharacterAnimationSystem) Transition(id ecs.EntityID, newState types.CharacterState, currentTick types.Tick) {
	anim, ok := ecs.GetComponent[*components.CharacterAnimationComponent](s.entityManager, id)
	if !ok {
		return
	}

	if anim.State == newState {
		return
	}

	log.Printf("[CharacterAnimation] 状态切换: %s -> %s (tick=%d)", anim.State, newState, currentTick)

	anim.State = newState
	anim.FrameIndex = 0
	anim.LastFrameChangeTick = currentTick

	if newState == types.StateJumping {
		anim.JumpStartTick = currentTick
	}
}

// Update 推进所有角色实体的动画
//
// 每步先做跳跃完成检查，再做帧推进，两者使用同一个 tick。
func (s *CharacterAnimationSystem) Update(currentTick types.Tick) {
	entities := ecs.GetEntitiesWith1[*components.CharacterAnimationComponent](s.entityManager)

	for _, id := range entities {
		anim, ok := ecs.GetComponent[*components.CharacterAnimationComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 跳跃完成检查：进度达到 1.0 时强制回到 Idle
		if anim.State == types.StateJumping {
			if s.jumpProgress(anim, currentTick) >= 1.0 {
				s.Transition(id, types.StateIdle, currentTick)
			}
		}

		s.advanceFrame(anim, currentTick)
	}
}

// advanceFrame 按帧间隔推进帧索引（模状态帧数循环）
// 未达到间隔阈值时是无操作
func (s *CharacterAnimationSystem) advanceFrame(anim *components.CharacterAnimationComponent, currentTick types.Tick) {
	if currentTick.Since(anim.LastFrameChangeTick) < anim.FrameDurationTicks {
		return
	}

	anim.FrameIndex = (anim.FrameIndex + 1) % anim.State.FrameCount()
	anim.LastFrameChangeTick = currentTick
}

// jumpProgress 计算跳跃进度比值，仅在 Jumping 状态下有意义
func (s *CharacterAnimationSystem) jumpProgress(anim *components.CharacterAnimationComponent, currentTick types.Tick) float64 {
	return float64(currentTick.Since(anim.JumpStartTick)) / float64(s.jumpDurationTicks)
}

// JumpOffset 返回角色的垂直跳跃偏移（像素，向上为负）
//
// 偏移是跳跃进度的纯函数：-|sin(progress·π)|·jumpHeight，
// 中点最高，起落两端回到基线。非 Jumping 状态恒为 0。
// 只读派生值，供渲染层使用。
func (s *CharacterAnimationSystem) JumpOffset(id ecs.EntityID, currentTick types.Tick) float64 {
	anim, ok := ecs.GetComponent[*components.CharacterAnimationComponent](s.entityManager, id)
	if !ok || anim.State != types.StateJumping {
		return 0
	}

	progress := utils.Clamp01(s.jumpProgress(anim, currentTick))
	return -utils.JumpArc(progress) * s.jumpHeight
}
