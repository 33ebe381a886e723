package util

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReonce_DoErrAndReset(t *testing.T) {
	var cnt = 0
	var reonce Reonce
	increase := func() error {
		cnt++
		return nil
	}

	assert.NoError(t, reonce.DoErr(increase))
	assert.NoError(t, reonce.DoErr(increase))
	assert.Equal(t, 1, cnt)
	assert.True(t, reonce.Done())

	reonce.Reset()
	assert.False(t, reonce.Done())

	assert.NoError(t, reonce.DoErr(increase))
	assert.Equal(t, 2, cnt)
}

func TestReonce_DoErrRetriesAfterFailure(t *testing.T) {
	var reonce Reonce
	var calls = 0

	err := reonce.DoErr(func() error {
		calls++
		return errors.New("bad input")
	})
	assert.Error(t, err)
	assert.False(t, reonce.Done())

	err = reonce.DoErr(func() error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, reonce.Done())

	err = reonce.DoErr(func() error {
		calls++
		return errors.New("never called")
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestReonce_ConcurrentDoErr(t *testing.T) {
	var reonce Reonce
	var calls int32

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = reonce.DoErr(func() error {
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&calls, 1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
