package outlier

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		g      float64
		want   []float64
	}{
		{
			name:   "single high outlier",
			values: []float64{1, 2, 2, 2, 3, 4, 4, 4, 5, 25},
			g:      1.5,
			want:   []float64{25},
		},
		{
			name:   "tight linear run",
			values: []float64{1, 2, 3, 4, 5},
			g:      1.5,
			want:   []float64{},
		},
		{
			name:   "zero multiplier",
			values: []float64{1, 2, 3, 4, 5},
			g:      0,
			want:   []float64{1, 2, 4, 5},
		},
		{
			name:   "unsorted input",
			values: []float64{100, 3, 1, 2},
			g:      1.5,
			want:   []float64{100},
		},
		{
			name:   "outliers on both sides",
			values: []float64{-50, 10, 11, 12, 12, 13, 14, 80},
			g:      1.5,
			want:   []float64{-50, 80},
		},
		{
			name:   "single element",
			values: []float64{42},
			g:      1.5,
			want:   []float64{},
		},
		{
			name:   "two elements",
			values: []float64{1, 3},
			g:      1.5,
			want:   []float64{},
		},
		{
			name:   "duplicated outlier",
			values: []float64{1, 2, 2, 3, 3, 4, 40, 40},
			g:      1.5,
			want:   []float64{40, 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.values, tt.g)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_Integers(t *testing.T) {
	got, err := DetectDefault([]int{1, 2, 2, 2, 3, 4, 4, 4, 5, 25})
	require.NoError(t, err)
	assert.Equal(t, []int{25}, got)
}

func TestDetect_DoesNotMutateInput(t *testing.T) {
	values := []float64{25, 4, 1, 5, 2, 4, 2, 3, 2, 4}
	original := append([]float64(nil), values...)

	first, err := Detect(values, DefaultMultiplier)
	require.NoError(t, err)
	second, err := Detect(values, DefaultMultiplier)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, original, values)
}

func TestDetect_AllEqual(t *testing.T) {
	for _, g := range []float64{0, 0.5, DefaultMultiplier, ExtremeMultiplier, 100} {
		for n := 1; n <= 9; n++ {
			values := make([]float64, n)
			for i := range values {
				values[i] = 7.25
			}

			got, err := Detect(values, g)
			require.NoError(t, err)
			assert.Empty(t, got, "g=%v n=%d", g, n)
		}
	}
}

func TestDetect_MultiplierMonotonicity(t *testing.T) {
	values := []float64{-30, -4, 0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 300}

	last := len(values) + 1
	for g := 0.0; g <= 10; g += 0.25 {
		got, err := Detect(values, g)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got), last, "g=%v", g)
		last = len(got)
	}
}

func TestCompute(t *testing.T) {
	fence, err := Compute([]float64{1, 2, 2, 2, 3, 4, 4, 4, 5, 25}, DefaultMultiplier)
	require.NoError(t, err)

	assert.Equal(t, 3.5, fence.Median)
	assert.Equal(t, 2.0, fence.Q1)
	assert.Equal(t, 4.0, fence.Q3)
	assert.Equal(t, 2.0, fence.IQR())
	assert.Equal(t, 3.0, fence.Range)
	assert.Equal(t, 0.5, fence.Lower())
	assert.Equal(t, 6.5, fence.Upper())
	assert.Equal(t, 10, fence.Size)

	assert.True(t, fence.Contains(25))
	assert.False(t, fence.Contains(5))
	assert.True(t, fence.IsOutlier(7))
	assert.False(t, fence.Contains(7))
}

func TestCompute_Errors(t *testing.T) {
	_, err := Compute([]float64{}, DefaultMultiplier)
	assert.True(t, errors.Is(err, ErrInvalidInput), err)

	_, err = Compute([]int(nil), DefaultMultiplier)
	assert.True(t, errors.Is(err, ErrInvalidInput), err)

	_, err = Compute([]float64{1, 2, 3}, -1)
	assert.True(t, errors.Is(err, ErrInvalidArgument), err)

	_, err = Compute([]float64{1, 2, 3}, math.NaN())
	assert.True(t, errors.Is(err, ErrInvalidArgument), err)

	_, err = Compute([]float64{1, 2, 3}, math.Inf(1))
	assert.True(t, errors.Is(err, ErrInvalidArgument), err)

	_, err = Compute([]float64{1, math.NaN(), 3}, DefaultMultiplier)
	assert.True(t, errors.Is(err, ErrTypeMismatch), err)

	_, err = Compute([]float64{1, math.Inf(-1), 3}, DefaultMultiplier)
	assert.True(t, errors.Is(err, ErrTypeMismatch), err)
}

func TestDetect_LargeIntegersAreExact(t *testing.T) {
	got, err := Detect([]int64{1 << 53, 1<<53 + 1, 1<<53 + 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{1 << 53, 1<<53 + 2}, got)

	gotU, err := Detect([]uint64{math.MaxUint64 - 2, math.MaxUint64 - 1, math.MaxUint64}, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{math.MaxUint64 - 2, math.MaxUint64}, gotU)

	fence, err := Compute([]int64{1 << 53, 1<<53 + 1, 1<<53 + 2}, DefaultMultiplier)
	require.NoError(t, err)
	assert.False(t, fence.IsOutlier(1<<53+4))
	assert.True(t, fence.IsOutlier(1<<53+5))
}
