package slice

// Clone 返回切片的浅拷贝
// 对nil切片返回空切片，保证调用方拿到的永远是独立的底层数组
func Clone[T any](items []T) []T {
	result := make([]T, len(items))
	copy(result, items)
	return result
}

// Map 对切片中的每个元素应用转换函数，返回新切片
func Map[T, R any](items []T, f func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, f(item))
	}
	return result
}

// IndexFunc 返回第一个满足条件的元素下标，不存在时返回-1
func IndexFunc[T any](items []T, f func(T) bool) int {
	for i, item := range items {
		if f(item) {
			return i
		}
	}
	return -1
}

// ContainsFunc 检查切片中是否存在满足条件的元素
func ContainsFunc[T any](items []T, f func(T) bool) bool {
	return IndexFunc(items, f) >= 0
}
