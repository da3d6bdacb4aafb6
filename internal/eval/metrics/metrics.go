// Package metrics scores a ranked list of movie ids against graded relevance judgments.
// Judgments map an IMDb id to a grade; unjudged movies count as not relevant.
package metrics

const (
	GradeNotRelevant = 0
	GradeMarginally  = 1
	GradeRelevant    = 2
	GradeHighly      = 3
)

type ScoreSet struct {
	NDCG      map[int]float64 `json:"ndcg"`      // K -> NDCG@K
	Precision map[int]float64 `json:"precision"` // K -> P@K
	Recall    map[int]float64 `json:"recall"`    // K -> R@K
	AP        float64         `json:"ap"`
	RR        float64         `json:"rr"`
}

func ComputeAll(ranked []string, judgments map[string]int, kValues []int, relevanceThreshold int) ScoreSet {
	s := ScoreSet{
		NDCG:      make(map[int]float64, len(kValues)),
		Precision: make(map[int]float64, len(kValues)),
		Recall:    make(map[int]float64, len(kValues)),
	}

	for _, k := range kValues {
		s.NDCG[k] = NDCGAtK(ranked, judgments, k)
		s.Precision[k] = PrecisionAtK(ranked, judgments, k, relevanceThreshold)
		s.Recall[k] = RecallAtK(ranked, judgments, k, relevanceThreshold)
	}

	s.AP = AveragePrecision(ranked, judgments, relevanceThreshold)
	s.RR = ReciprocalRank(ranked, judgments, relevanceThreshold)

	return s
}

func countRelevant(judgments map[string]int, threshold int) int {
	var count int
	for _, grade := range judgments {
		if grade >= threshold {
			count++
		}
	}
	return count
}
