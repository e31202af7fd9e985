package set

import (
	"testing"
)

// 对应A={1,2,3}, B={2,3,4}的基本运算结果
func TestAlgebra_BasicExamples(t *testing.T) {
	a := New[int]("A", 1, 2, 3)
	b := New[int]("B", 2, 3, 4)

	testCases := []struct {
		testName string
		got      *Set[int]
		want     []int
	}{
		{"union", a.Union(b), []int{1, 2, 3, 4}},
		{"intersection", a.Intersection(b), []int{2, 3}},
		{"difference", a.Difference(b), []int{1}},
		{"symmetric difference", a.SymmetricDifference(b), []int{1, 4}},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			elems := tc.got.Elements()
			if len(elems) != len(tc.want) {
				t.Fatalf("Size mismatch. Expected %d, got %d", len(tc.want), len(elems))
			}
			// 结果顺序也有规定：先接收者顺序，再另一集合顺序
			for i, v := range tc.want {
				if elems[i] != v {
					t.Errorf("Element mismatch at position %d. Expected %d, got %d", i, v, elems[i])
				}
			}
		})
	}

	// 运算不得修改操作数
	if a.Size() != 3 || b.Size() != 3 {
		t.Error("Operations must not mutate their operands")
	}
}

func TestAlgebra_ResultNames(t *testing.T) {
	a := New[int]("A", 1)
	b := New[int]("B", 2)

	if got := a.Union(b).Name(); got != "A ∪ B" {
		t.Errorf("Union result name mismatch. Expected %q, got %q", "A ∪ B", got)
	}
	if got := a.Intersection(b).Name(); got != "A ∩ B" {
		t.Errorf("Intersection result name mismatch. Expected %q, got %q", "A ∩ B", got)
	}
	if got := a.Difference(b).Name(); got != "A-B" {
		t.Errorf("Difference result name mismatch. Expected %q, got %q", "A-B", got)
	}
}

func TestAlgebra_Reflexivity(t *testing.T) {
	sets := []*Set[int]{
		New[int]("empty"),
		New[int]("A", 1, 2, 3),
		New[int]("B", 42),
	}

	for _, s := range sets {
		if !s.IsEqualTo(s) {
			t.Errorf("Set %s should be equal to itself", s.Name())
		}
	}
}

func TestAlgebra_Commutativity(t *testing.T) {
	a := New[int]("A", 1, 2, 3, 7)
	b := New[int]("B", 2, 3, 4)

	if !a.Union(b).IsEqualTo(b.Union(a)) {
		t.Error("Union should be commutative")
	}
	if !a.Intersection(b).IsEqualTo(b.Intersection(a)) {
		t.Error("Intersection should be commutative")
	}
	if !a.SymmetricDifference(b).IsEqualTo(b.SymmetricDifference(a)) {
		t.Error("Symmetric difference should be commutative")
	}

	// 差集一般不可交换
	if a.Difference(b).IsEqualTo(b.Difference(a)) {
		t.Error("Difference of these sets should not be commutative")
	}
}

func TestAlgebra_UnionMonotonicity(t *testing.T) {
	a := New[int]("A", 1, 2)
	b := New[int]("B", 3, 4)

	if !a.IsSubsetOf(a.Union(b)) {
		t.Error("A should be a subset of A ∪ B")
	}
}

func TestAlgebra_Subset(t *testing.T) {
	empty := New[int]("empty")
	a := New[int]("A", 1, 2, 3)
	sub := New[int]("sub", 3, 1)
	other := New[int]("other", 1, 5)

	// 空集是任何集合的子集，包括它自己
	if !empty.IsSubsetOf(a) {
		t.Error("Empty set should be a subset of any set")
	}
	if !empty.IsSubsetOf(empty) {
		t.Error("Empty set should be a subset of itself")
	}

	if !sub.IsSubsetOf(a) {
		t.Error("{3, 1} should be a subset of {1, 2, 3}")
	}
	if other.IsSubsetOf(a) {
		t.Error("{1, 5} should not be a subset of {1, 2, 3}")
	}
	if a.IsSubsetOf(sub) {
		t.Error("{1, 2, 3} should not be a subset of {3, 1}")
	}
}

func TestAlgebra_EqualityIgnoresOrderAndName(t *testing.T) {
	a := New[int]("A", 1, 2, 3)
	b := New[int]("B", 3, 2, 1)
	c := New[int]("C", 1, 2)

	if !a.IsEqualTo(b) {
		t.Error("Sets with same elements in different order should be equal")
	}
	if a.IsEqualTo(c) {
		t.Error("Sets with different elements should not be equal")
	}
}

func TestAlgebra_EmptyOperands(t *testing.T) {
	empty := New[int]("E")
	a := New[int]("A", 1, 2)

	if !a.Union(empty).IsEqualTo(a) {
		t.Error("A ∪ ∅ should equal A")
	}
	if !a.Intersection(empty).IsEqualTo(empty) {
		t.Error("A ∩ ∅ should be empty")
	}
	if !a.Difference(empty).IsEqualTo(a) {
		t.Error("A − ∅ should equal A")
	}
	if !empty.Difference(a).IsEqualTo(empty) {
		t.Error("∅ − A should be empty")
	}
	if !a.SymmetricDifference(empty).IsEqualTo(a) {
		t.Error("A △ ∅ should equal A")
	}
}
