package set

import (
	"testing"
)

func TestSet_InsertionOrder(t *testing.T) {
	// 乱序插入，集合应该保留插入顺序而不是排序
	s := New[int]("A", 3, 1, 4, 1, 5, 9, 2, 6)

	expected := []int{3, 1, 4, 5, 9, 2, 6}
	result := s.Elements()

	if len(result) != len(expected) {
		t.Fatalf("Set size incorrect. Expected %d, got %d", len(expected), len(result))
	}

	for i, v := range expected {
		if result[i] != v {
			t.Errorf("Order mismatch at position %d. Expected %d, got %d", i, v, result[i])
		}
	}
}

func TestSet_IdempotentInsert(t *testing.T) {
	s := New[int]("A")

	if !s.Insert(1) {
		t.Error("First insert of 1 should report true")
	}
	if s.Insert(1) {
		t.Error("Second insert of 1 should report false")
	}

	// 重复插入不改变大小
	if s.Size() != 1 {
		t.Errorf("Duplicate insert should not change size. Expected 1, got %d", s.Size())
	}
}

func TestSet_Contains(t *testing.T) {
	s := New[string]("fruits", "apple", "banana")

	if !s.Contains("apple") {
		t.Error("Set should contain apple")
	}
	if s.Contains("kiwi") {
		t.Error("Set should not contain kiwi")
	}
}

func TestSet_NameAccessors(t *testing.T) {
	s := New[int]("A", 1, 2)
	if s.Name() != "A" {
		t.Errorf("Expected name A, got %s", s.Name())
	}

	s.SetName("B")
	if s.Name() != "B" {
		t.Errorf("Expected name B after rename, got %s", s.Name())
	}

	// 改名不影响内容
	if s.Size() != 2 {
		t.Errorf("Rename should not change content. Expected size 2, got %d", s.Size())
	}
}

func TestSet_Render(t *testing.T) {
	s := New[int]("A", 1, 2, 3)
	if got := s.Render(); got != "A = {1, 2, 3}" {
		t.Errorf("Render mismatch. Expected %q, got %q", "A = {1, 2, 3}", got)
	}

	// 名称为空时省略前缀
	anon := New[int]("", 1, 2)
	if got := anon.Render(); got != "{1, 2}" {
		t.Errorf("Render of unnamed set mismatch. Expected %q, got %q", "{1, 2}", got)
	}

	empty := New[int]("E")
	if got := empty.Render(); got != "E = {}" {
		t.Errorf("Render of empty set mismatch. Expected %q, got %q", "E = {}", got)
	}
}

func TestSet_ElementsDetached(t *testing.T) {
	s := New[int]("A", 1, 2, 3)

	elems := s.Elements()
	elems[0] = 99

	// 修改快照不应影响集合本身
	if !s.Contains(1) {
		t.Error("Mutating the snapshot should not affect the set")
	}
}

func TestSet_Clone(t *testing.T) {
	s := New[int]("A", 1, 2)
	c := s.Clone()

	c.Insert(3)

	if s.Size() != 2 {
		t.Errorf("Mutating the clone should not affect the original. Expected size 2, got %d", s.Size())
	}
	if c.Size() != 3 {
		t.Errorf("Clone should accept new elements. Expected size 3, got %d", c.Size())
	}
	if !c.IsEqualTo(New[int]("whatever", 1, 2, 3)) {
		t.Error("Clone content mismatch")
	}
}

func TestSet_CustomEquality(t *testing.T) {
	// 使用忽略大小写的相等关系
	caseInsensitive := func(a, b string) bool {
		if len(a) != len(b) {
			return false
		}
		for i := 0; i < len(a); i++ {
			ca, cb := a[i], b[i]
			if 'A' <= ca && ca <= 'Z' {
				ca += 'a' - 'A'
			}
			if 'A' <= cb && cb <= 'Z' {
				cb += 'a' - 'A'
			}
			if ca != cb {
				return false
			}
		}
		return true
	}

	s := NewFunc("words", caseInsensitive, "Go", "go", "GO", "rust")

	if s.Size() != 2 {
		t.Errorf("Custom equality should deduplicate. Expected size 2, got %d", s.Size())
	}
	if !s.Contains("gO") {
		t.Error("Set should contain gO under case-insensitive equality")
	}
}

func TestSet_ForEach(t *testing.T) {
	s := New[int]("A", 1, 2, 3, 4)

	// 返回false应停止遍历
	visited := 0
	s.ForEach(func(v int) bool {
		visited++
		return visited < 2
	})

	if visited != 2 {
		t.Errorf("ForEach should stop early. Expected 2 visits, got %d", visited)
	}
}
