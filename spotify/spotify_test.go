package spotify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	spotifyapi "github.com/zmb3/spotify/v2"
)

func TestID(t *testing.T) {
	assert.Equal(t, spotifyapi.ID("6Nle9hKrkL1wQpwNfEkxjh"),
		id("6Nle9hKrkL1wQpwNfEkxjh"))
	assert.Equal(t, spotifyapi.ID("6Nle9hKrkL1wQpwNfEkxjh"),
		id("https://open.spotify.com/track/6Nle9hKrkL1wQpwNfEkxjh"))
	assert.Equal(t, spotifyapi.ID("6Nle9hKrkL1wQpwNfEkxjh"),
		id("https://open.spotify.com/track/6Nle9hKrkL1wQpwNfEkxjh?si=abcdef"))
	assert.Equal(t, spotifyapi.ID("6Nle9hKrkL1wQpwNfEkxjh"),
		id("spotify:track:6Nle9hKrkL1wQpwNfEkxjh"))
	assert.Equal(t, spotifyapi.ID("6Nle9hKrkL1wQpwNfEkxjh"),
		id("  6Nle9hKrkL1wQpwNfEkxjh "))
}

func TestTrackEntity(t *testing.T) {
	full := &spotifyapi.FullTrack{
		SimpleTrack: spotifyapi.SimpleTrack{
			ID:          "6Nle9hKrkL1wQpwNfEkxjh",
			Name:        "White Ferrari",
			Artists:     []spotifyapi.SimpleArtist{{Name: "Frank Ocean"}},
			Duration:    249000,
			TrackNumber: 15,
		},
		Album: spotifyapi.SimpleAlbum{
			Name:        "Blonde",
			ReleaseDate: "2016-08-20",
			Images:      []spotifyapi.Image{{URL: "https://i.scdn.co/image/cover"}},
		},
		ExternalIDs: map[string]string{"isrc": "QMCE31600095"},
	}

	track := trackEntity(full)
	assert.Equal(t, "6Nle9hKrkL1wQpwNfEkxjh", track.ID)
	assert.Equal(t, "White Ferrari", track.Title)
	assert.Equal(t, []string{"Frank Ocean"}, track.Artists)
	assert.Equal(t, "Blonde", track.Album)
	assert.Equal(t, "https://i.scdn.co/image/cover", track.Artwork.URL)
	assert.Equal(t, 249000, track.Duration)
	assert.Equal(t, "QMCE31600095", track.ISRC)
	assert.Equal(t, 15, track.Number)
	assert.Equal(t, 2016, track.Year)
}
