package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// JumpArc 单峰跳跃弧线
// 输入跳跃进度 t ∈ [0, 1]，返回归一化高度 ∈ [0, 1]：
// 中点最高，两端回到 0
// 公式：f(t) = |sin(t·π)|
func JumpArc(t float64) float64 {
	return math.Abs(math.Sin(t * math.Pi))
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 t 限制在 [0, 1] 范围内
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
