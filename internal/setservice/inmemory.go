package setservice

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fyerfyer/set-kit/registry"
	"github.com/fyerfyer/set-kit/set"
	"github.com/fyerfyer/set-kit/slice"
)

// InMemoryService 实现了Service接口的内存存储版本
type InMemoryService struct {
	// 底层的名称注册表
	reg *registry.Registry[int]
	// 集合名称到创建时间的映射
	created map[string]time.Time
	// 已执行操作的历史记录
	history []OpRecord
	// 保护内部状态的互斥锁
	mu sync.RWMutex
}

// NewInMemoryService 创建一个新的内存集合服务
func NewInMemoryService() *InMemoryService {
	return &InMemoryService{
		reg:     registry.NewRegistry[int](),
		created: make(map[string]time.Time),
	}
}

// recordOp 追加一条操作历史记录，调用方必须持有写锁
func (s *InMemoryService) recordOp(command, outcome string) {
	s.history = append(s.history, OpRecord{
		ID:      uuid.New().String(),
		Command: command,
		Outcome: outcome,
		At:      time.Now(),
	})
}

// DefineSet 用给定元素创建一个命名集合，同名集合被覆盖
func (s *InMemoryService) DefineSet(name string, values ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reg.AddSet(set.New(name, values...))
	s.created[name] = time.Now()

	s.recordOp(fmt.Sprintf("define %s %v", name, values),
		fmt.Sprintf("%d element(s)", len(values)))
}

// InsertValue 向指定名称的集合插入一个元素
func (s *InMemoryService) InsertValue(name string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reg.InsertInto(name, value); err != nil {
		return err
	}

	s.recordOp(fmt.Sprintf("insert %s %d", name, value), "ok")
	return nil
}

// GetSet 返回指定名称集合的独立副本
func (s *InMemoryService) GetSet(name string) (*set.Set[int], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.reg.GetSet(name)
}

// RenderSet 返回指定名称集合的文本表示
func (s *InMemoryService) RenderSet(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target, err := s.reg.GetSet(name)
	if err != nil {
		return "", err
	}
	return target.Render(), nil
}

// ListSets 按注册顺序列出所有集合的信息
func (s *InMemoryService) ListSets() []SetInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := s.reg.SetNames()
	result := make([]SetInfo, 0, len(names))
	for _, name := range names {
		target, err := s.reg.GetSet(name)
		if err != nil {
			continue
		}
		result = append(result, SetInfo{
			Name:      name,
			Size:      target.Size(),
			Rendered:  target.Render(),
			CreatedAt: s.created[name],
		})
	}

	return result
}

// SetNames 按注册顺序返回所有集合名称
func (s *InMemoryService) SetNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.reg.SetNames()
}

// Operate 执行两个命名集合之间的二元运算
func (s *InMemoryService) Operate(nameA string, op registry.OpKind, nameB string) (*set.Set[int], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.reg.Operate(nameA, op, nameB)
	if err != nil {
		return nil, err
	}

	s.recordOp(fmt.Sprintf("%s %s %s", op, nameA, nameB), result.Render())
	return result, nil
}

// IsSubset 检查集合A是否是集合B的子集
func (s *InMemoryService) IsSubset(nameA, nameB string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.reg.GetSet(nameA)
	if err != nil {
		return false, err
	}
	b, err := s.reg.GetSet(nameB)
	if err != nil {
		return false, err
	}

	result := a.IsSubsetOf(b)
	s.recordOp(fmt.Sprintf("issubset %s %s", nameA, nameB), fmt.Sprintf("%t", result))
	return result, nil
}

// IsEqual 检查两个命名集合是否相等
func (s *InMemoryService) IsEqual(nameA, nameB string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.reg.GetSet(nameA)
	if err != nil {
		return false, err
	}
	b, err := s.reg.GetSet(nameB)
	if err != nil {
		return false, err
	}

	result := a.IsEqualTo(b)
	s.recordOp(fmt.Sprintf("isequal %s %s", nameA, nameB), fmt.Sprintf("%t", result))
	return result, nil
}

// SetSize 返回指定名称集合的元素数量
func (s *InMemoryService) SetSize(name string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target, err := s.reg.GetSet(name)
	if err != nil {
		return 0, err
	}
	return target.Size(), nil
}

// PowerSet 返回指定名称集合的幂集
func (s *InMemoryService) PowerSet(name string) (*set.Set[*set.Set[int]], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.reg.OperateUnary(name, registry.OpPowerSet)
	if err != nil {
		return nil, err
	}

	s.recordOp(fmt.Sprintf("powerset %s", name), fmt.Sprintf("%d subset(s)", result.Size()))
	return result, nil
}

// CartesianProduct 返回两个命名集合的笛卡尔积
func (s *InMemoryService) CartesianProduct(nameA, nameB string) (*set.Set[set.Pair[int]], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.reg.CartesianProduct(nameA, nameB)
	if err != nil {
		return nil, err
	}

	s.recordOp(fmt.Sprintf("cartesian %s %s", nameA, nameB), fmt.Sprintf("%d pair(s)", result.Size()))
	return result, nil
}

// History 返回已执行操作的历史记录
func (s *InMemoryService) History() []OpRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slice.Clone(s.history)
}

// Close 释放服务持有的状态
func (s *InMemoryService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reg = registry.NewRegistry[int]()
	s.created = make(map[string]time.Time)
	s.history = nil
	return nil
}
