package components

// CooldownComponent 技能冷却计时器
// 每步最多递减 1，不会低于 0；归零后不自动重新装填，
// 重新装填由调度系统在进入 Jumping 时显式触发
type CooldownComponent struct {
	// RemainingTicks 剩余冷却 tick 数
	RemainingTicks uint64

	// DurationTicks 装填时的完整冷却时长（常量，> 0）
	DurationTicks uint64
}
