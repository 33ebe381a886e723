package util

import (
	"sync"
	"sync/atomic"
)

// Reonce runs an initializer at most once per arming. Unlike sync.Once, a
// failing initializer leaves it armed, and Reset re-arms it explicitly.
type Reonce struct {
	done uint32
	m    sync.Mutex
}

func (o *Reonce) Reset() {
	o.m.Lock()
	atomic.StoreUint32(&o.done, 0)
	o.m.Unlock()
}

// Done reports whether an initializer has completed successfully.
func (o *Reonce) Done() bool {
	return atomic.LoadUint32(&o.done) == 1
}

// DoErr calls f unless a previous call has already succeeded. Only a nil
// error marks the Reonce as done, so the next caller retries after a failure.
func (o *Reonce) DoErr(f func() error) error {
	if atomic.LoadUint32(&o.done) == 0 {
		// Outlined slow-path to allow inlining of the fast-path.
		return o.doSlow(f)
	}
	return nil
}

func (o *Reonce) doSlow(f func() error) error {
	o.m.Lock()
	defer o.m.Unlock()
	if o.done != 0 {
		return nil
	}

	if err := f(); err != nil {
		return err
	}

	atomic.StoreUint32(&o.done, 1)
	return nil
}
