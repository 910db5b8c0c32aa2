package resolver

import (
	"sort"

	"github.com/spotisync/spotisync/entity"
)

// Match is a resolved candidate together with the
// confidence it was accepted at.
type Match struct {
	Candidate  Candidate
	Confidence float64
}

// Rank scores every candidate against the target, discards those with
// no confidence at all and returns the best one, provided it clears the
// caller-supplied threshold. Ties keep the original candidate order.
// An empty candidate list is simply unresolved, never an error.
func Rank(target *entity.Track, candidates []Candidate, threshold float64, weights Weights) (*Match, bool) {
	type scored struct {
		candidate  Candidate
		confidence float64
	}

	ranking := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		if score := weights.Score(target, candidate); score.Confidence > 0 {
			ranking = append(ranking, scored{candidate, score.Confidence})
		}
	}

	if len(ranking) == 0 {
		return nil, false
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].confidence > ranking[j].confidence
	})

	if best := ranking[0]; best.confidence >= threshold {
		return &Match{Candidate: best.candidate, Confidence: best.confidence}, true
	}
	return nil, false
}
