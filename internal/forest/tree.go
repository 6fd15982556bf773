package forest

import (
	"math/rand"
	"sort"
)

type node struct {
	feature   int
	threshold float64
	left      *node
	right     *node
	// probability is the weighted positive fraction at a leaf.
	probability float64
	leaf        bool
}

type growParams struct {
	maxDepth int
	minLeaf  int
	mtry     int
	width    int
}

func (n *node) predict(x []float64) float64 {
	for !n.leaf {
		if x[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.probability
}

func grow(data [][]float64, ys, weights []float64, sample []int, p growParams, rng *rand.Rand, depth int) *node {
	prob := weightedPositiveFraction(ys, weights, sample)

	if depth >= p.maxDepth || len(sample) < 2*p.minLeaf || prob == 0 || prob == 1 {
		return &node{leaf: true, probability: prob}
	}

	feature, threshold, ok := bestSplit(data, ys, weights, sample, p, rng)
	if !ok {
		return &node{leaf: true, probability: prob}
	}

	var left, right []int
	for _, idx := range sample {
		if data[idx][feature] <= threshold {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}
	if len(left) < p.minLeaf || len(right) < p.minLeaf {
		return &node{leaf: true, probability: prob}
	}

	return &node{
		feature:   feature,
		threshold: threshold,
		left:      grow(data, ys, weights, left, p, rng, depth+1),
		right:     grow(data, ys, weights, right, p, rng, depth+1),
	}
}

// bestSplit scans a random feature subset for the weighted-gini-optimal
// threshold. Returns ok=false when no split separates the sample.
func bestSplit(data [][]float64, ys, weights []float64, sample []int, p growParams, rng *rand.Rand) (int, float64, bool) {
	bestGini := gini(ys, weights, sample)
	bestFeature, bestThreshold := -1, 0.0

	for _, feature := range featureSubset(p.width, p.mtry, rng) {
		ordered := make([]int, len(sample))
		copy(ordered, sample)
		sort.Slice(ordered, func(i, j int) bool {
			return data[ordered[i]][feature] < data[ordered[j]][feature]
		})

		var totalW, totalPos float64
		for _, idx := range ordered {
			totalW += weights[idx]
			if ys[idx] >= 0.5 {
				totalPos += weights[idx]
			}
		}

		var leftW, leftPos float64
		for i := 0; i < len(ordered)-1; i++ {
			idx := ordered[i]
			leftW += weights[idx]
			if ys[idx] >= 0.5 {
				leftPos += weights[idx]
			}

			cur := data[idx][feature]
			next := data[ordered[i+1]][feature]
			if cur == next {
				continue
			}
			if i+1 < p.minLeaf || len(ordered)-i-1 < p.minLeaf {
				continue
			}

			rightW := totalW - leftW
			rightPos := totalPos - leftPos
			split := (leftW*giniOf(leftPos, leftW) + rightW*giniOf(rightPos, rightW)) / totalW
			if split < bestGini {
				bestGini = split
				bestFeature = feature
				bestThreshold = (cur + next) / 2
			}
		}
	}

	if bestFeature < 0 {
		return 0, 0, false
	}
	return bestFeature, bestThreshold, true
}

func featureSubset(width, mtry int, rng *rand.Rand) []int {
	if mtry >= width {
		all := make([]int, width)
		for i := range all {
			all[i] = i
		}
		return all
	}
	return rng.Perm(width)[:mtry]
}

func weightedPositiveFraction(ys, weights []float64, sample []int) float64 {
	var total, pos float64
	for _, idx := range sample {
		total += weights[idx]
		if ys[idx] >= 0.5 {
			pos += weights[idx]
		}
	}
	if total == 0 {
		return 0
	}
	return pos / total
}

func gini(ys, weights []float64, sample []int) float64 {
	var total, pos float64
	for _, idx := range sample {
		total += weights[idx]
		if ys[idx] >= 0.5 {
			pos += weights[idx]
		}
	}
	return giniOf(pos, total)
}

func giniOf(pos, total float64) float64 {
	if total == 0 {
		return 0
	}
	p := pos / total
	return 2 * p * (1 - p)
}
