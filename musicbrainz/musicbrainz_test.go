package musicbrainz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestISRC(t *testing.T) {
	var parsed recordingResponse
	assert.NoError(t, json.Unmarshal([]byte(`{"recordings": [
		{"score": 100, "isrcs": []},
		{"score": 95, "isrcs": ["USUM71703085"]},
		{"score": 60, "isrcs": ["USUM71799999"]}
	]}`), &parsed))
	assert.Equal(t, "USUM71703085", bestISRC(parsed))
}

func TestBestISRCBelowFloor(t *testing.T) {
	var parsed recordingResponse
	assert.NoError(t, json.Unmarshal([]byte(`{"recordings": [
		{"score": 80, "isrcs": ["USUM71703085"]}
	]}`), &parsed))
	assert.Empty(t, bestISRC(parsed))
}

func TestBestISRCEmpty(t *testing.T) {
	assert.Empty(t, bestISRC(recordingResponse{}))
}
