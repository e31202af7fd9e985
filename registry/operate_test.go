package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/set-kit/set"
)

func newTestRegistry() *Registry[int] {
	r := NewRegistry[int]()
	r.AddSet(set.New[int]("A", 1, 2, 3))
	r.AddSet(set.New[int]("B", 2, 3, 4))
	return r
}

func TestOperate_BinaryOps(t *testing.T) {
	r := newTestRegistry()

	testCases := []struct {
		op       OpKind
		want     []int
		wantName string
	}{
		{OpUnion, []int{1, 2, 3, 4}, "(A union B)"},
		{OpIntersection, []int{2, 3}, "(A intersection B)"},
		{OpDifference, []int{1}, "(A difference B)"},
		{OpSymmetricDifference, []int{1, 4}, "(A symmetric_difference B)"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.op), func(t *testing.T) {
			result, err := r.Operate("A", tc.op, "B")
			require.NoError(t, err)

			// 结果重命名为规范形式
			assert.Equal(t, tc.wantName, result.Name())
			assert.Equal(t, tc.want, result.Elements())
		})
	}
}

func TestOperate_DoesNotMutateStoredSets(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Operate("A", OpUnion, "B")
	require.NoError(t, err)

	a, err := r.GetSet("A")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, a.Elements())
}

func TestOperate_NotFound(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Operate("X", OpUnion, "A")
	assert.True(t, errors.Is(err, ErrSetNotFound))

	_, err = r.Operate("A", OpUnion, "X")
	assert.True(t, errors.Is(err, ErrSetNotFound))
}

func TestOperate_InvalidOperation(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Operate("A", OpKind("join"), "B")
	assert.True(t, errors.Is(err, ErrInvalidOperation))

	// 幂集是一元运算，对二元入口而言是无效运算符
	_, err = r.Operate("A", OpPowerSet, "B")
	assert.True(t, errors.Is(err, ErrInvalidOperation))
}

func TestOperateUnary_PowerSet(t *testing.T) {
	r := newTestRegistry()

	ps, err := r.OperateUnary("A", OpPowerSet)
	require.NoError(t, err)

	// |P(A)| = 2^|A|
	assert.Equal(t, 8, ps.Size())
	assert.True(t, ps.Contains(set.New[int]("")))
	assert.True(t, ps.Contains(set.New[int]("", 1, 2, 3)))
}

func TestOperateUnary_Unsupported(t *testing.T) {
	r := newTestRegistry()

	_, err := r.OperateUnary("A", OpKind("complement"))
	assert.True(t, errors.Is(err, ErrUnsupportedOperation))

	_, err = r.OperateUnary("missing", OpPowerSet)
	assert.True(t, errors.Is(err, ErrSetNotFound))
}

func TestCartesianProduct(t *testing.T) {
	r := newTestRegistry()

	product, err := r.CartesianProduct("A", "B")
	require.NoError(t, err)

	assert.Equal(t, 9, product.Size())
	assert.True(t, product.Contains(set.Pair[int]{First: 1, Second: 4}))
	assert.False(t, product.Contains(set.Pair[int]{First: 4, Second: 1}))

	_, err = r.CartesianProduct("A", "X")
	assert.True(t, errors.Is(err, ErrSetNotFound))
}
