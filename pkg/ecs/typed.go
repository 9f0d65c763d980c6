package ecs

import "reflect"

// 泛型查询辅助函数
// 避免业务代码里到处出现 reflect.TypeOf 和类型断言

// GetComponent 获取实体的 T 类型组件
// T 必须是组件的指针类型，如 *components.CooldownComponent
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponentByType(id, reflect.TypeOf(zero))
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponentOf 检查实体是否拥有 T 类型组件
func HasComponentOf[T any](em *EntityManager, id EntityID) bool {
	var zero T
	return em.HasComponent(id, reflect.TypeOf(zero))
}

// GetEntitiesWith1 查询拥有 T 类型组件的所有实体
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	var zero T
	return em.GetEntitiesWith(reflect.TypeOf(zero))
}

// GetEntitiesWith2 查询同时拥有 T1 和 T2 类型组件的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	var z1 T1
	var z2 T2
	return em.GetEntitiesWith(reflect.TypeOf(z1), reflect.TypeOf(z2))
}

// CountEntitiesWith1 统计拥有 T 类型组件的实体数量
// 只读查询，不分配结果切片之外的内存
func CountEntitiesWith1[T any](em *EntityManager) int {
	return len(GetEntitiesWith1[T](em))
}
