package predictor

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"

	"StockPulse/internal/domain/models"
)

var (
	// ErrNotTrained is returned by Predict before a successful Train.
	ErrNotTrained = errors.New("predictor not trained")
)

const (
	clfEpochs       = 200
	clfLearningRate = 0.1
)

// Predictor is the offline-fitted model pair: a least-squares price regressor
// and a logistic direction classifier sharing one standard scaler. Fitted
// state persists across requests; Train swaps it atomically under the write
// lock so an in-flight Predict never observes a scaler mid-update.
type Predictor struct {
	mu         sync.RWMutex
	scaler     *standardScaler
	regWeights []float64 // intercept + one weight per feature
	clfWeights []float64
}

func New() *Predictor { return &Predictor{} }

// Train fits scaler, regressor and classifier together on one example set.
func (p *Predictor) Train(examples []models.TrainingExample) error {
	k := len(models.FeatureOrder)
	if len(examples) <= k {
		return fmt.Errorf("need more than %d training examples, got %d", k, len(examples))
	}

	rows := make([][]float64, len(examples))
	prices := make([]float64, len(examples))
	ups := make([]float64, len(examples))
	for i, ex := range examples {
		x, err := featureRow(ex.Features)
		if err != nil {
			return fmt.Errorf("example %d: %w", i, err)
		}
		rows[i] = x
		prices[i] = ex.TargetPrice
		ups[i] = float64(ex.TargetUp)
	}

	columns := make([][]float64, k)
	for j := 0; j < k; j++ {
		col := make([]float64, len(rows))
		for i := range rows {
			col[i] = rows[i][j]
		}
		columns[j] = col
	}
	scaler := fitScaler(columns)

	scaled := make([][]float64, len(rows))
	for i, x := range rows {
		scaled[i] = scaler.transform(x)
	}

	regW, err := solveLeastSquares(scaled, prices)
	if err != nil {
		return fmt.Errorf("fit regressor: %w", err)
	}
	clfW := fitLogistic(scaled, ups)

	p.mu.Lock()
	p.scaler = scaler
	p.regWeights = regW
	p.clfWeights = clfW
	p.mu.Unlock()
	return nil
}

// Predict scales one inference row with the stored scaler and returns the
// predicted next close and direction (true = up).
func (p *Predictor) Predict(row models.InferenceRow) (float64, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.scaler == nil {
		return 0, false, ErrNotTrained
	}
	x, err := featureRow(row.Features)
	if err != nil {
		return 0, false, err
	}
	xs := p.scaler.transform(x)

	price := p.regWeights[0]
	z := p.clfWeights[0]
	for j, v := range xs {
		price += p.regWeights[j+1] * v
		z += p.clfWeights[j+1] * v
	}
	return price, sigmoid(z) >= 0.5, nil
}

// featureRow extracts values in the fixed feature order.
func featureRow(fv models.FeatureVector) ([]float64, error) {
	x := make([]float64, len(models.FeatureOrder))
	for j, name := range models.FeatureOrder {
		v, ok := fv[name]
		if !ok || math.IsNaN(v) {
			return nil, fmt.Errorf("missing feature %q", name)
		}
		x[j] = v
	}
	return x, nil
}

// solveLeastSquares fits y ~ intercept + X·w via QR decomposition.
func solveLeastSquares(scaled [][]float64, y []float64) ([]float64, error) {
	m := len(scaled)
	k := len(scaled[0])

	a := mat.NewDense(m, k+1, nil)
	for i, x := range scaled {
		a.Set(i, 0, 1)
		for j, v := range x {
			a.Set(i, j+1, v)
		}
	}
	b := mat.NewDense(m, 1, y)

	var qr mat.QR
	qr.Factorize(a)
	var sol mat.Dense
	if err := qr.SolveTo(&sol, false, b); err != nil {
		// a near-singular system still yields a usable minimum-norm fit
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, err
		}
	}

	w := make([]float64, k+1)
	for j := range w {
		w[j] = sol.At(j, 0)
	}
	return w, nil
}

// fitLogistic runs full-batch gradient descent for the direction classifier.
func fitLogistic(scaled [][]float64, y []float64) []float64 {
	m := len(scaled)
	k := len(scaled[0])
	w := make([]float64, k+1)

	for epoch := 0; epoch < clfEpochs; epoch++ {
		grad := make([]float64, k+1)
		for i, x := range scaled {
			z := w[0]
			for j, v := range x {
				z += w[j+1] * v
			}
			err := sigmoid(z) - y[i]
			grad[0] += err
			for j, v := range x {
				grad[j+1] += err * v
			}
		}
		for j := range w {
			w[j] -= clfLearningRate * grad[j] / float64(m)
		}
	}
	return w
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
