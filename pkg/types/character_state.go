package types

// CharacterState 定义角色动画状态
// 封闭枚举：帧数和精灵图行号的映射是静态配置，不是运行时数据
type CharacterState int

const (
	// StateIdle 待机状态
	StateIdle CharacterState = iota
	// StateWalking 行走状态
	StateWalking
	// StateJumping 跳跃状态
	StateJumping
)

// FrameCount 返回该状态的动画帧数
func (s CharacterState) FrameCount() int {
	switch s {
	case StateIdle:
		return 4
	case StateWalking:
		return 6
	case StateJumping:
		return 4
	}
	return 1
}

// SheetRow 返回该状态在精灵图中的行号
func (s CharacterState) SheetRow() int {
	switch s {
	case StateIdle:
		return 0
	case StateWalking:
		return 1
	case StateJumping:
		return 2
	}
	return 0
}

// String 返回状态的字符串表示
func (s CharacterState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateWalking:
		return "Walking"
	case StateJumping:
		return "Jumping"
	}
	return "Unknown"
}

// AllCharacterStates 返回全部状态，按精灵图行号顺序
// 用于程序化生成精灵图和遍历校验
func AllCharacterStates() []CharacterState {
	return []CharacterState{StateIdle, StateWalking, StateJumping}
}
