package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankEmpty(t *testing.T) {
	match, ok := Rank(target("Song", "Artist"), nil, 0.5, DefaultWeights())
	assert.False(t, ok)
	assert.Nil(t, match)
}

func TestRankBest(t *testing.T) {
	match, ok := Rank(target("Song", "Artist", withDuration(200000)), []Candidate{
		{ID: "video", Title: "Song (Official Music Video)", Artists: []string{"Artist"}, Duration: 200},
		{ID: "plain", Title: "Song", Artists: []string{"Artist"}, Duration: 200},
		{ID: "live", Title: "Song (Live)", Artists: []string{"Artist"}, Duration: 200},
	}, 0.5, DefaultWeights())

	assert.True(t, ok)
	assert.Equal(t, "plain", match.Candidate.ID)
	assert.GreaterOrEqual(t, match.Confidence, 0.5)
}

func TestRankThreshold(t *testing.T) {
	candidates := []Candidate{
		{ID: "live", Title: "Song (Live)", Artists: []string{"Artist"}, Duration: 200},
	}

	match, ok := Rank(target("Song", "Artist", withDuration(200000)), candidates, 0.75, DefaultWeights())
	assert.False(t, ok)
	assert.Nil(t, match)

	match, ok = Rank(target("Song", "Artist", withDuration(200000)), candidates, 0.25, DefaultWeights())
	assert.True(t, ok)
	assert.GreaterOrEqual(t, match.Confidence, 0.25)
}

func TestRankStable(t *testing.T) {
	// identical confidence keeps the original search order
	match, ok := Rank(target("Song", "Artist"), []Candidate{
		{ID: "first", Title: "Song", Artists: []string{"Artist"}},
		{ID: "second", Title: "Song", Artists: []string{"Artist"}},
	}, 0.5, DefaultWeights())

	assert.True(t, ok)
	assert.Equal(t, "first", match.Candidate.ID)
}

func TestDedupe(t *testing.T) {
	deduped := Dedupe([]Candidate{
		{ID: "a", Title: "Song", Source: SourceIdentifier},
		{ID: "", Title: "orphan"},
		{ID: "headless"},
		{ID: "a", Title: "Song (reindexed)", Source: SourceFreeText},
		{ID: "b", Title: "Song", Source: SourceFreeText},
		{ID: "b", Title: "Song (identifier)", Source: SourceIdentifier},
	})

	assert.Len(t, deduped, 2)
	// identifier-sourced entries survive free-text duplicates...
	assert.Equal(t, "Song", deduped[0].Title)
	// ...while free-text entries yield to any later duplicate
	assert.Equal(t, "Song (identifier)", deduped[1].Title)
}
