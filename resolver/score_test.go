package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/spotisync/spotisync/entity"
)

func target(title, artist string, options ...func(*entity.Track)) *entity.Track {
	track := &entity.Track{
		ID:      "spotify-id",
		Title:   title,
		Artists: []string{artist},
	}
	for _, option := range options {
		option(track)
	}
	return track
}

func withISRC(isrc string) func(*entity.Track) {
	return func(track *entity.Track) { track.ISRC = isrc }
}

func withDuration(milliseconds int) func(*entity.Track) {
	return func(track *entity.Track) { track.Duration = milliseconds }
}

func TestScorePerfectMatch(t *testing.T) {
	score := DefaultWeights().Score(
		target("Shape of You", "Ed Sheeran", withISRC("GBAHS1600463"), withDuration(233712)),
		Candidate{
			ID:       "video-id",
			Title:    "Shape of You",
			Artists:  []string{"Ed Sheeran"},
			Duration: 233.7,
			ISRC:     "gbahs1600463", // ISRC comparison is case-insensitive
		})

	// 40 (isrc) + 35 (title) + 25 (artist) + 10 (duration) + 20 (exact bonus)
	assert.InDelta(t, 130.0, score.Points, 1e-9)
	assert.InDelta(t, 1.3, score.Confidence, 1e-9)
}

func TestScoreISRCRegression(t *testing.T) {
	// an ISRC match on an otherwise middling candidate (title and
	// artist similarity at 0.6, duration spot on) must stay above
	// the strict pipeline threshold
	score := DefaultWeights().Score(
		target("alpha beta gamma delta", "one two three four",
			withISRC("US1234567890"), withDuration(200000)),
		Candidate{
			ID:       "video-id",
			Title:    "alpha beta gamma epsilon",
			Artists:  []string{"one two three five"},
			Duration: 200,
			ISRC:     "US1234567890",
		})

	assert.GreaterOrEqual(t, score.Confidence, 0.85)
}

func TestScoreOfficialVideoPenalized(t *testing.T) {
	var (
		weights = DefaultWeights()
		track   = target("Song Title", "Artist", withDuration(200000))
		plain   = weights.Score(track, Candidate{
			ID: "a", Title: "Song Title", Artists: []string{"Artist"}, Duration: 200,
		})
		video = weights.Score(track, Candidate{
			ID: "b", Title: "Song Title (Official Music Video)", Artists: []string{"Artist"}, Duration: 200,
		})
	)
	assert.Less(t, video.Confidence, plain.Confidence)
}

func TestScorePenaltiesStack(t *testing.T) {
	var (
		weights = DefaultWeights()
		track   = target("Song", "Artist")
		one     = weights.Score(track, Candidate{
			ID: "a", Title: "Song (Live)", Artists: []string{"Artist"},
		})
		two = weights.Score(track, Candidate{
			ID: "b", Title: "Song (Live) [Visualizer]", Artists: []string{"Artist"},
		})
	)
	assert.Less(t, two.Points, one.Points)
}

func TestScoreInstrumentalPenalty(t *testing.T) {
	var (
		weights      = DefaultWeights()
		track        = target("Song", "Artist")
		instrumental = weights.Score(track, Candidate{
			ID: "a", Title: "Song (Instrumental)", Artists: []string{"Artist"},
		})
		original = weights.Score(track, Candidate{
			ID: "b", Title: "Song", Artists: []string{"Artist"},
		})
	)
	assert.Less(t, instrumental.Points, original.Points)
}

func TestScoreFeaturedOriginalBonus(t *testing.T) {
	var (
		weights  = DefaultWeights()
		track    = target("Song", "Artist")
		featured = weights.Score(track, Candidate{
			ID: "a", Title: "Song (feat. Somebody)", Artists: []string{"Artist"},
		})
		remix = weights.Score(track, Candidate{
			ID: "b", Title: "Song (feat. Somebody) [Remix]", Artists: []string{"Artist"},
		})
	)
	// the featured bonus only applies to original cuts
	assert.Greater(t, featured.Points, remix.Points)
}

func TestScoreSpedUpExempted(t *testing.T) {
	var (
		weights = DefaultWeights()
		track   = target("Song", "Artist")
		spedUp  = weights.Score(track, Candidate{
			ID: "a", Title: "Song (Sped Up)", Artists: []string{"Artist"},
		})
		slowed = weights.Score(track, Candidate{
			ID: "b", Title: "Song (Slowed)", Artists: []string{"Artist"},
		})
	)
	assert.Greater(t, spedUp.Points, slowed.Points)
}

func TestScoreConfidenceClampedAtZero(t *testing.T) {
	score := DefaultWeights().Score(
		target("Completely Different", "Someone"),
		Candidate{ID: "a", Title: "Another Song (Official Music Video) [Live]", Artists: []string{"Else"}})
	assert.Zero(t, score.Confidence)
	assert.Negative(t, score.Points)
}
