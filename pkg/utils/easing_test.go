package utils

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// TestJumpArc 单峰弧线：两端为 0，中点为 1，全程非负
func TestJumpArc(t *testing.T) {
	if !almostEqual(JumpArc(0), 0) {
		t.Errorf("JumpArc(0) = %f, 期望 0", JumpArc(0))
	}
	if !almostEqual(JumpArc(1), 0) {
		t.Errorf("JumpArc(1) = %f, 期望 0", JumpArc(1))
	}
	if !almostEqual(JumpArc(0.5), 1) {
		t.Errorf("JumpArc(0.5) = %f, 期望 1", JumpArc(0.5))
	}

	for _, pair := range [][2]float64{{0.25, 0.75}, {0.1, 0.9}, {0.4, 0.6}} {
		if !almostEqual(JumpArc(pair[0]), JumpArc(pair[1])) {
			t.Errorf("弧线不对称: JumpArc(%f)=%f vs JumpArc(%f)=%f",
				pair[0], JumpArc(pair[0]), pair[1], JumpArc(pair[1]))
		}
	}

	for f := 0.0; f <= 1.0; f += 0.05 {
		if JumpArc(f) < 0 {
			t.Errorf("JumpArc(%f) = %f 为负", f, JumpArc(f))
		}
	}
}

// TestLerp 线性插值端点和中点
func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t  float64
		expected float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{255, 0, 0.5, 127.5},
		{-5, 5, 0.5, 0},
	}

	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); !almostEqual(got, tt.expected) {
			t.Errorf("Lerp(%f, %f, %f) = %f, 期望 %f", tt.a, tt.b, tt.t, got, tt.expected)
		}
	}
}

// TestClamp01 边界截断
func TestClamp01(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2.5, 1},
	}

	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.expected {
			t.Errorf("Clamp01(%f) = %f, 期望 %f", tt.in, got, tt.expected)
		}
	}
}

// TestEaseOutQuad 端点固定，中段快于线性
func TestEaseOutQuad(t *testing.T) {
	if !almostEqual(EaseOutQuad(0), 0) || !almostEqual(EaseOutQuad(1), 1) {
		t.Error("EaseOutQuad 端点错误")
	}
	if EaseOutQuad(0.5) <= EaseLinear(0.5) {
		t.Errorf("EaseOutQuad(0.5) = %f 应大于线性 0.5", EaseOutQuad(0.5))
	}
}
