// Package forest implements a sample-weighted random-forest classifier with
// median imputation, sized for the small pooled datasets this service trains
// on. Nothing here is NBA-specific: inputs are fixed-width float vectors and
// a binary target.
package forest

import (
	"errors"
	"math"
	"math/rand"
)

// Config controls forest construction.
type Config struct {
	Trees            int
	MaxDepth         int
	MinLeafSamples   int
	FeaturesPerSplit int
	Seed             int64
}

// DefaultConfig mirrors the tuning the risk model was calibrated with.
func DefaultConfig() Config {
	return Config{
		Trees:          350,
		MaxDepth:       10,
		MinLeafSamples: 3,
		Seed:           42,
	}
}

// Forest is a trained ensemble.
type Forest struct {
	trees   []*node
	medians []float64
}

var (
	// ErrNoRows is returned when training receives no examples.
	ErrNoRows = errors.New("forest: no training rows")
	// ErrSingleClass is returned when the target has only one class.
	ErrSingleClass = errors.New("forest: single-class target")
	// ErrShape is returned on mismatched input lengths.
	ErrShape = errors.New("forest: mismatched input shapes")
)

// Train fits the ensemble on feature vectors, binary targets, and per-row
// weights. NaN feature values are imputed with the column median before any
// split is considered.
func Train(xs [][]float64, ys []float64, weights []float64, cfg Config) (*Forest, error) {
	if len(xs) == 0 {
		return nil, ErrNoRows
	}
	if len(ys) != len(xs) || (weights != nil && len(weights) != len(xs)) {
		return nil, ErrShape
	}
	if !bothClassesPresent(ys) {
		return nil, ErrSingleClass
	}
	if cfg.Trees <= 0 {
		cfg = DefaultConfig()
	}
	if weights == nil {
		weights = uniformWeights(len(xs))
	}

	width := len(xs[0])
	medians := columnMedians(xs, width)
	data := imputeAll(xs, medians)

	mtry := cfg.FeaturesPerSplit
	if mtry <= 0 {
		mtry = int(math.Sqrt(float64(width)))
		if mtry < 1 {
			mtry = 1
		}
	}

	trees := make([]*node, cfg.Trees)
	for i := range trees {
		// Per-tree seed keeps results independent of build order.
		rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
		sample := bootstrap(len(data), rng)
		trees[i] = grow(data, ys, weights, sample, growParams{
			maxDepth: cfg.MaxDepth,
			minLeaf:  cfg.MinLeafSamples,
			mtry:     mtry,
			width:    width,
		}, rng, 0)
	}

	return &Forest{trees: trees, medians: medians}, nil
}

// PredictProbability returns the mean positive-class probability across
// trees. NaN inputs are imputed with the training medians.
func (f *Forest) PredictProbability(x []float64) float64 {
	input := impute(x, f.medians)
	var sum float64
	for _, t := range f.trees {
		sum += t.predict(input)
	}
	return sum / float64(len(f.trees))
}

func bothClassesPresent(ys []float64) bool {
	var pos, neg bool
	for _, y := range ys {
		if y >= 0.5 {
			pos = true
		} else {
			neg = true
		}
	}
	return pos && neg
}

func uniformWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

func bootstrap(n int, rng *rand.Rand) []int {
	sample := make([]int, n)
	for i := range sample {
		sample[i] = rng.Intn(n)
	}
	return sample
}
