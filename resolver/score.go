package resolver

import (
	"strings"

	"github.com/spotisync/spotisync/entity"
	"github.com/spotisync/spotisync/similarity"
)

// Weights is the canonical scoring table: additive points over a fixed
// budget, higher is better throughout. The constants are an empirical
// calibration against one search index's result shape, exposed as
// configuration rather than hardcoded.
type Weights struct {
	Budget float64 // normalization denominator for confidence

	ISRCMatch float64 // flat bonus when both ISRC codes are present and equal
	Title     float64 // multiplier over title similarity
	Artist    float64 // multiplier over artist similarity
	Duration  float64 // multiplier over duration similarity
	Album     float64 // multiplier over album similarity, both albums present

	ExactMatchBonus       float64 // title and artist similarity both at 0.9 or above
	FeaturedOriginalBonus float64 // original cut carrying featured credits in the title
	InstrumentalPenalty   float64

	// unwanted-indicator penalties, by family
	PenaltyOfficialVideo float64
	PenaltyClip          float64
	PenaltyPerformance   float64
	PenaltyLyricVideo    float64
	PenaltyAlternateCut  float64
	PenaltyOther         float64
}

func DefaultWeights() Weights {
	return Weights{
		Budget: 100,

		ISRCMatch: 40,
		Title:     35,
		Artist:    25,
		Duration:  10,
		Album:     5,

		ExactMatchBonus:       20,
		FeaturedOriginalBonus: 15,
		InstrumentalPenalty:   25,

		PenaltyOfficialVideo: 50,
		PenaltyClip:          40,
		PenaltyPerformance:   30,
		PenaltyLyricVideo:    25,
		PenaltyAlternateCut:  20,
		PenaltyOther:         15,
	}
}

// unwantedIndicators maps title substrings that flag non-album content
// to their penalty family. "sped up" is deliberately absent so that
// sped-up edits remain valid matches.
var unwantedIndicators = []struct {
	indicator string
	family    func(Weights) float64
}{
	{"official video", func(w Weights) float64 { return w.PenaltyOfficialVideo }},
	{"music video", func(w Weights) float64 { return w.PenaltyOfficialVideo }},
	{"mv", func(w Weights) float64 { return w.PenaltyOfficialVideo }},
	{"official mv", func(w Weights) float64 { return w.PenaltyOfficialVideo }},
	{"video clip", func(w Weights) float64 { return w.PenaltyClip }},
	{"clip", func(w Weights) float64 { return w.PenaltyClip }},
	{"visual", func(w Weights) float64 { return w.PenaltyClip }},
	{"visualizer", func(w Weights) float64 { return w.PenaltyClip }},
	{"remix", func(w Weights) float64 { return w.PenaltyPerformance }},
	{"live", func(w Weights) float64 { return w.PenaltyPerformance }},
	{"slowed", func(w Weights) float64 { return w.PenaltyPerformance }},
	{"lyric video", func(w Weights) float64 { return w.PenaltyLyricVideo }},
	{"lyrics video", func(w Weights) float64 { return w.PenaltyLyricVideo }},
	{"animated", func(w Weights) float64 { return w.PenaltyLyricVideo }},
	{"acoustic", func(w Weights) float64 { return w.PenaltyAlternateCut }},
	{"instrumental", func(w Weights) float64 { return w.PenaltyAlternateCut }},
	{"cover", func(w Weights) float64 { return w.PenaltyAlternateCut }},
	{"karaoke", func(w Weights) float64 { return w.PenaltyAlternateCut }},
	{"concert", func(w Weights) float64 { return w.PenaltyOther }},
	{"perform", func(w Weights) float64 { return w.PenaltyOther }},
	{"tour", func(w Weights) float64 { return w.PenaltyOther }},
	{"8d", func(w Weights) float64 { return w.PenaltyOther }},
	{"8d audio", func(w Weights) float64 { return w.PenaltyOther }},
}

// Score is the scorer output for one (target, candidate) pair: the raw
// additive points and the confidence normalized over the budget.
// Confidence is clamped below at zero; values above 1 are possible and
// simply read as very confident.
type Score struct {
	Points     float64
	Confidence float64
}

// Score rates how likely the candidate is the same recording as the
// target. Independent signals add up: ISRC equality, title, artist,
// duration and album similarity, with bonuses for unambiguous matches
// and penalties for content the target did not ask for.
func (weights Weights) Score(target *entity.Track, candidate Candidate) Score {
	points := 0.0

	if target.ISRC != "" && candidate.ISRC != "" &&
		strings.EqualFold(target.ISRC, candidate.ISRC) {
		points += weights.ISRCMatch
	}

	titleScore := similarity.Title(target.Title, candidate.Title)
	points += titleScore * weights.Title

	artistScore := similarity.Artist(target.Artist(), candidate.Artists)
	points += artistScore * weights.Artist

	points += similarity.Duration(target.Seconds(), candidate.Duration) * weights.Duration

	if target.Album != "" && candidate.Album != "" {
		points += similarity.String(target.Album, candidate.Album) * weights.Album
	}

	points -= weights.unwantedPenalty(candidate.Title)

	if titleScore >= 0.9 && artistScore >= 0.9 {
		points += weights.ExactMatchBonus
	}

	candidateTitle := strings.ToLower(candidate.Title)
	if (strings.Contains(candidateTitle, "feat.") || strings.Contains(candidateTitle, "featuring")) &&
		!strings.Contains(candidateTitle, "instrumental") &&
		!strings.Contains(candidateTitle, "remix") &&
		!strings.Contains(candidateTitle, "acapella") {
		points += weights.FeaturedOriginalBonus
	}

	if strings.Contains(candidateTitle, "instrumental") {
		points -= weights.InstrumentalPenalty
	}

	confidence := points / weights.Budget
	if confidence < 0 {
		confidence = 0
	}
	return Score{Points: points, Confidence: confidence}
}

// unwantedPenalty sums the penalties of every indicator found in the
// candidate title. Multiple indicators stack.
func (weights Weights) unwantedPenalty(title string) float64 {
	if title == "" {
		return 0
	}

	titleLower := strings.ToLower(title)
	penalty := 0.0
	for _, entry := range unwantedIndicators {
		if strings.Contains(titleLower, entry.indicator) {
			penalty += entry.family(weights)
		}
	}
	return penalty
}
