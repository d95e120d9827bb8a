package errors

import "errors"

// ErrConcurrentUpdate 并发写冲突：记录已被其他请求修改
var ErrConcurrentUpdate = errors.New("数据已被其他操作修改，请刷新后重试")
