package metrics

import (
	"math"
	"sort"
)

// NDCGAtK uses exponential gain: DCG = sum((2^grade - 1) / log2(rank+1)).
func NDCGAtK(ranked []string, judgments map[string]int, k int) float64 {
	if k <= 0 || len(ranked) == 0 || len(judgments) == 0 {
		return 0
	}

	gains := make([]int, 0, min(k, len(ranked)))
	for _, id := range ranked[:min(k, len(ranked))] {
		gains = append(gains, judgments[id])
	}

	ideal := make([]int, 0, len(judgments))
	for _, grade := range judgments {
		if grade > 0 {
			ideal = append(ideal, grade)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ideal)))
	if len(ideal) > k {
		ideal = ideal[:k]
	}

	idcg := dcg(ideal)
	if idcg == 0 {
		return 0
	}
	return dcg(gains) / idcg
}

func dcg(grades []int) float64 {
	var sum float64
	for i, grade := range grades {
		sum += (math.Pow(2, float64(grade)) - 1) / math.Log2(float64(i+2))
	}
	return sum
}
