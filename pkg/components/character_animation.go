// Package components 定义所有纯数据组件
// 遵循 ECS 原则：组件只存储数据，不包含方法，逻辑全部在 systems 包
package components

import "github.com/gonewx/spritelab/pkg/types"

// CharacterAnimationComponent 角色动画状态机的全部状态
// 由 CharacterAnimationSystem 独占修改
type CharacterAnimationComponent struct {
	// State 当前动画状态，只能通过 Transition 操作修改
	State types.CharacterState

	// FrameIndex 当前状态内的帧索引
	// 不变量：0 <= FrameIndex < State.FrameCount()
	FrameIndex int

	// FrameDurationTicks 帧推进所需的 tick 数（每实例常量，> 0）
	FrameDurationTicks uint64

	// LastFrameChangeTick FrameIndex（或 State）最近一次变化的 tick
	LastFrameChangeTick types.Tick

	// JumpStartTick 最近一次进入 Jumping 状态的 tick
	// 在 Jumping 之外无意义
	JumpStartTick types.Tick
}
