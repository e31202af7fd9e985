package registry

import "errors"

var (
	// ErrSetNotFound 表示引用的集合名称未注册
	ErrSetNotFound = errors.New("set not found")

	// ErrInvalidOperation 表示二元运算符不在四种已知运算之内
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrUnsupportedOperation 表示一元运算符不被支持
	ErrUnsupportedOperation = errors.New("unsupported unary operation")
)
