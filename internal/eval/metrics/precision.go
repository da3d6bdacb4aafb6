package metrics

// PrecisionAtK divides by k, not by the number of hits, so short result lists are penalized.
func PrecisionAtK(ranked []string, judgments map[string]int, k int, relevanceThreshold int) float64 {
	if k <= 0 || len(ranked) == 0 {
		return 0
	}
	return float64(relevantInTop(ranked, judgments, k, relevanceThreshold)) / float64(k)
}

func RecallAtK(ranked []string, judgments map[string]int, k int, relevanceThreshold int) float64 {
	if k <= 0 || len(ranked) == 0 {
		return 0
	}

	total := countRelevant(judgments, relevanceThreshold)
	if total == 0 {
		return 0
	}
	return float64(relevantInTop(ranked, judgments, k, relevanceThreshold)) / float64(total)
}

// AveragePrecision averages precision at every rank holding a relevant movie.
func AveragePrecision(ranked []string, judgments map[string]int, relevanceThreshold int) float64 {
	total := countRelevant(judgments, relevanceThreshold)
	if len(ranked) == 0 || total == 0 {
		return 0
	}

	var sum float64
	var seen int
	for i, id := range ranked {
		if judgments[id] >= relevanceThreshold {
			seen++
			sum += float64(seen) / float64(i+1)
		}
	}
	return sum / float64(total)
}

func ReciprocalRank(ranked []string, judgments map[string]int, relevanceThreshold int) float64 {
	for i, id := range ranked {
		if judgments[id] >= relevanceThreshold {
			return 1.0 / float64(i+1)
		}
	}
	return 0
}

func relevantInTop(ranked []string, judgments map[string]int, k int, threshold int) int {
	var n int
	for _, id := range ranked[:min(k, len(ranked))] {
		if judgments[id] >= threshold {
			n++
		}
	}
	return n
}
