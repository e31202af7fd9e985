package set

// PowerSet 返回幂集：包含给定集合所有子集的集合，包括空集和集合自身
// n个元素的集合的幂集恰好有2^n个成员
//
// 提供为包级函数而不是方法：方法不能用自身的类型参数去实例化接收者类型
// （Set[T]的方法返回*Set[*Set[T]]会形成实例化循环），包级函数没有这个限制，
// 还允许对幂集再求幂集
//
// 枚举方式：把元素按插入顺序编号0..n-1，遍历k ∈ [0, 2^n)，
// 当k的第i位为1时子集包含第i个元素，子集内部保持下标升序
// 外层集合用子集的值相等性（互为子集）去重；由于输入本身无重复元素，
// 不同位模式生成的子集必然互不相等，结果大小恰好是2^n
func PowerSet[T any](s *Set[T]) *Set[*Set[T]] {
	result := NewFunc(s.name+" Power Set", func(a, b *Set[T]) bool {
		return a.IsEqualTo(b)
	})

	n := len(s.elems)
	total := 1 << n

	for k := 0; k < total; k++ {
		subset := NewFunc("", s.eq)
		for i := 0; i < n; i++ {
			if k&(1<<i) != 0 {
				subset.Insert(s.elems[i])
			}
		}
		result.Insert(subset)
	}

	return result
}
