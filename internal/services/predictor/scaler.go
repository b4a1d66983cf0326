package predictor

import "gonum.org/v1/gonum/stat"

// standardScaler holds per-feature location and scale fitted on a training
// matrix. Transform never refits; inference reuses the stored moments.
type standardScaler struct {
	means []float64
	stds  []float64
}

func fitScaler(columns [][]float64) *standardScaler {
	s := &standardScaler{
		means: make([]float64, len(columns)),
		stds:  make([]float64, len(columns)),
	}
	for i, col := range columns {
		s.means[i] = stat.Mean(col, nil)
		sd := stat.StdDev(col, nil)
		if sd == 0 || len(col) < 2 {
			sd = 1
		}
		s.stds[i] = sd
	}
	return s
}

func (s *standardScaler) transform(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - s.means[i]) / s.stds[i]
	}
	return out
}
