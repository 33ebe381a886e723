package outlier

import (
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/c9s/outliers/pkg/util"
)

// Predicate is the callback shape of a filtering host: it is called with each
// element, the element index and the whole sequence being filtered.
type Predicate[R any] func(value R, index int, context []R) (bool, error)

// Filter keeps the inliers of a sequence.
//
// The fence is computed on the context of the first successful Keep call and
// reused for every later call, even when a different context is passed. A
// computation that fails is not cached.
type Filter[R any, T Number] struct {
	extract    Extractor[R, T]
	multiplier float64

	once  util.Reonce
	fence atomic.Pointer[Fence[T]]
}

// NewFilter returns a Filter for plain numeric sequences.
func NewFilter[T Number](g float64) (*Filter[T, T], error) {
	return NewKeyedFilter(Identity[T](), g)
}

// NewDefaultFilter is NewFilter with DefaultMultiplier.
func NewDefaultFilter[T Number]() *Filter[T, T] {
	return &Filter[T, T]{
		extract:    Identity[T](),
		multiplier: DefaultMultiplier,
	}
}

// NewDefaultKeyedFilter is NewKeyedFilter with DefaultMultiplier.
func NewDefaultKeyedFilter[R any, T Number](extract Extractor[R, T]) (*Filter[R, T], error) {
	return NewKeyedFilter(extract, DefaultMultiplier)
}

// NewKeyedFilter returns a Filter for records classified by the number extract returns.
func NewKeyedFilter[R any, T Number](extract Extractor[R, T], g float64) (*Filter[R, T], error) {
	if extract == nil {
		return nil, errors.New("extractor can not be nil")
	}

	if err := ValidateMultiplier(g); err != nil {
		return nil, err
	}

	return &Filter[R, T]{
		extract:    extract,
		multiplier: g,
	}, nil
}

func (f *Filter[R, T]) Multiplier() float64 {
	return f.multiplier
}

// Fence returns the cached computation, ok is false before the first successful Keep.
func (f *Filter[R, T]) Fence() (fence *Fence[T], ok bool) {
	if !f.once.Done() {
		return nil, false
	}

	fence = f.fence.Load()
	return fence, fence != nil
}

// Reset drops the cached fence, the next Keep computes a new one.
func (f *Filter[R, T]) Reset() {
	f.fence.Store(nil)
	f.once.Reset()
}

// Keep reports whether value is an inlier, i.e. not a member of the outlier set.
func (f *Filter[R, T]) Keep(value R, index int, context []R) (bool, error) {
	fence, err := f.load(context)
	if err != nil {
		return false, err
	}

	v, err := f.extract(value)
	if err != nil {
		return false, errors.Wrapf(err, "element %d", index)
	}

	return !fence.Contains(v), nil
}

// Predicate returns Keep as a Predicate value.
func (f *Filter[R, T]) Predicate() Predicate[R] {
	return f.Keep
}

func (f *Filter[R, T]) load(context []R) (*Fence[T], error) {
	for {
		if err := f.once.DoErr(func() error {
			return f.compute(context)
		}); err != nil {
			return nil, err
		}

		// a concurrent Reset may have dropped the fence in between
		if fence := f.fence.Load(); fence != nil {
			return fence, nil
		}
	}
}

func (f *Filter[R, T]) compute(context []R) error {
	values := make([]T, len(context))
	for i, record := range context {
		v, err := f.extract(record)
		if err != nil {
			computationErrorsMetric.WithLabelValues(modePredicate).Inc()
			return errors.Wrapf(err, "element %d", i)
		}
		values[i] = v
	}

	fence, err := compute(values, f.multiplier, modePredicate)
	if err != nil {
		return err
	}

	f.fence.Store(fence)
	return nil
}

// Select calls p for each element of values with the whole slice as context,
// and returns the elements p kept in their original order.
func Select[R any](values []R, p Predicate[R]) ([]R, error) {
	kept, _, err := Partition(values, p)
	return kept, err
}

// Partition splits values into the elements p kept and the ones it rejected.
func Partition[R any](values []R, p Predicate[R]) (kept, rejected []R, err error) {
	kept = make([]R, 0, len(values))
	for i, v := range values {
		ok, err := p(v, i, values)
		if err != nil {
			return nil, nil, err
		}

		if ok {
			kept = append(kept, v)
		} else {
			rejected = append(rejected, v)
		}
	}

	return kept, rejected, nil
}
