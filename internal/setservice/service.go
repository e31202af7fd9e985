package setservice

import (
	"time"

	"github.com/fyerfyer/set-kit/registry"
	"github.com/fyerfyer/set-kit/set"
)

// SetInfo 包含集合的基本信息
type SetInfo struct {
	// 集合名称
	Name string
	// 元素数量
	Size int
	// 集合的文本表示
	Rendered string
	// 创建时间
	CreatedAt time.Time
}

// OpRecord 一条已执行操作的历史记录
type OpRecord struct {
	// 记录的唯一标识
	ID string
	// 执行的命令文本
	Command string
	// 执行结果摘要
	Outcome string
	// 执行时间
	At time.Time
}

// Service 定义集合服务接口
// 脚本驱动和CLI命令都通过这一层访问注册表，元素类型固定为int
type Service interface {
	// DefineSet 用给定元素创建一个命名集合，同名集合被覆盖
	DefineSet(name string, values ...int)

	// InsertValue 向指定名称的集合插入一个元素
	InsertValue(name string, value int) error

	// GetSet 返回指定名称集合的独立副本
	GetSet(name string) (*set.Set[int], error)

	// RenderSet 返回指定名称集合的文本表示
	RenderSet(name string) (string, error)

	// ListSets 按注册顺序列出所有集合的信息
	ListSets() []SetInfo

	// SetNames 按注册顺序返回所有集合名称
	SetNames() []string

	// Operate 执行两个命名集合之间的二元运算
	Operate(nameA string, op registry.OpKind, nameB string) (*set.Set[int], error)

	// IsSubset 检查集合A是否是集合B的子集
	IsSubset(nameA, nameB string) (bool, error)

	// IsEqual 检查两个命名集合是否相等
	IsEqual(nameA, nameB string) (bool, error)

	// SetSize 返回指定名称集合的元素数量
	SetSize(name string) (int, error)

	// PowerSet 返回指定名称集合的幂集
	PowerSet(name string) (*set.Set[*set.Set[int]], error)

	// CartesianProduct 返回两个命名集合的笛卡尔积
	CartesianProduct(nameA, nameB string) (*set.Set[set.Pair[int]], error)

	// History 返回已执行操作的历史记录
	History() []OpRecord

	// Close 释放服务持有的状态
	Close() error
}
