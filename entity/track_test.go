package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSong(t *testing.T) {
	assert.Equal(t, "Nikes", (&Track{Title: "Nikes - Acoustic"}).Song())
	assert.Equal(t, "Nikes", (&Track{Title: "Nikes (Acoustic)"}).Song())
	assert.Equal(t, "Nikes", (&Track{Title: "Nikes [Acoustic]"}).Song())
	assert.Equal(t, "Nikes", (&Track{Title: "Nikes"}).Song())
}

func TestArtist(t *testing.T) {
	assert.Equal(t, "Frank Ocean", (&Track{Artists: []string{"Frank Ocean", "JAY-Z"}}).Artist())
	assert.Empty(t, (&Track{}).Artist())
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, 249.0, (&Track{Duration: 249000}).Seconds())
	assert.Equal(t, 0.0, (&Track{}).Seconds())
}

func TestPathFinal(t *testing.T) {
	assert.Equal(t, "Frank Ocean - Nikes.mp3",
		(&Track{Title: "Nikes", Artists: []string{"Frank Ocean"}}).Path().Final())
	assert.Equal(t, "Frank Ocean - Nikes (Acoustic).mp3",
		(&Track{Title: "Nikes - Acoustic", Artists: []string{"Frank Ocean"}}).Path().Final())
	assert.Equal(t, "Frank Ocean - Slide (ft Migos).mp3",
		(&Track{Title: "Slide", Artists: []string{"Frank Ocean", "Migos"}}).Path().Final())
	assert.Equal(t, "Mr Oizo - Flat Beat.mp3",
		(&Track{Title: "Flat Beat", Artists: []string{"Mr. Oizo"}}).Path().Final())
}

func TestPathCached(t *testing.T) {
	track := &Track{ID: "6Nle9hKrkL1wQpwNfEkxjh", Artwork: Artwork{URL: "https://i.scdn.co/image/ab67616d"}}
	assert.True(t, strings.HasSuffix(track.Path().Download(), ".mp3"))
	assert.True(t, strings.HasSuffix(track.Path().Artwork(), ".jpg"))
	assert.True(t, strings.HasSuffix(track.Path().Lyrics(), ".txt"))
	assert.NotEqual(t, track.Path().Download(), track.Path().Lyrics())
}
