package analysis

import (
	"errors"
	"math"
	"math/cmplx"
)

var ErrShortSeries = errors.New("analysis: series needs at least two samples")

// FFT transforms data, whose length must be a power of two.
func FFT(data []complex128) []complex128 {
	n := len(data)
	if n <= 1 {
		out := make([]complex128, n)
		copy(out, data)
		return out
	}

	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	out := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		out[k] = feven[k] + w*fodd[k]
		out[k+n/2] = feven[k] - w*fodd[k]
	}
	return out
}

// Spectrum returns the magnitude of each frequency bin of series after
// removing its mean and zero-padding to a power of two. Bin k has
// frequency k / (len * dt) where len is the padded length.
func Spectrum(series []float64) ([]float64, error) {
	if len(series) < 2 {
		return nil, ErrShortSeries
	}

	mean := Summarize(series).Mean
	n := nextPow2(len(series))
	padded := make([]complex128, n)
	for i, v := range series {
		padded[i] = complex(v-mean, 0)
	}

	bins := FFT(padded)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(bins[i])
	}
	return ps, nil
}

// DominantPeriod returns the period, in index units, of the strongest
// non-constant frequency in series sampled every dt. It returns +Inf for
// a flat series.
func DominantPeriod(series []float64, dt float64) (float64, error) {
	ps, err := Spectrum(series)
	if err != nil {
		return 0, err
	}

	best, bestPower := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > bestPower {
			best, bestPower = k, ps[k]
		}
	}
	if best == 0 || bestPower < 1e-12 {
		return math.Inf(1), nil
	}

	n := 2 * len(ps)
	return float64(n) * dt / float64(best), nil
}

type Summary struct {
	Mean float64
	Min  float64
	Max  float64
}

func Summarize(series []float64) Summary {
	if len(series) == 0 {
		return Summary{}
	}
	s := Summary{Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	for _, v := range series {
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = sum / float64(len(series))
	return s
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
