package analysis

import (
	"github.com/fernandosanchezjr/gomseq/sequence"
	"gonum.org/v1/gonum/floats"
)

// Bipolar maps the buffered bits to +1/-1 samples suitable for
// correlation against received signals.
func Bipolar(bs *sequence.BSequence) []float64 {
	samples := make([]float64, bs.Len())
	for i := range samples {
		if bs.Bit(i) == 1 {
			samples[i] = 1
		} else {
			samples[i] = -1
		}
	}
	return samples
}

// Balance counts the ones and zeros in the buffered sequence. A
// maximal-length sequence of period n holds (n+1)/2 ones and (n-1)/2
// zeros.
func Balance(bs *sequence.BSequence) (ones, zeros int) {
	for i := 0; i < bs.Len(); i++ {
		if bs.Bit(i) == 1 {
			ones++
		} else {
			zeros++
		}
	}
	return
}

// Autocorrelation computes the normalized cyclic autocorrelation of x
// at the given lag. Maximal-length sequences in bipolar form yield 1 at
// lag zero and -1/n everywhere else.
func Autocorrelation(x []float64, lag int) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	lag = ((lag % n) + n) % n
	shifted := make([]float64, n)
	for i := range x {
		shifted[i] = x[(i+lag)%n]
	}
	return floats.Dot(x, shifted) / float64(n)
}
