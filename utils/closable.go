package utils

import (
	"sync/atomic"
)

// Closable可嵌入到注册为Countable的结构中，Close之后
// stats循环会将其注销
type Closable struct {
	closed uint32
}

func (c *Closable) Close() error {
	atomic.StoreUint32(&c.closed, 1)
	return nil
}

func (c *Closable) Closed() bool {
	return atomic.LoadUint32(&c.closed) > 0
}
