package playlist

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spotisync/spotisync/entity"
)

func chtmp(t *testing.T) {
	t.Helper()
	cwd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { assert.NoError(t, os.Chdir(cwd)) })
}

func testTrack() *entity.Track {
	return &entity.Track{
		ID:       "6Nle9hKrkL1wQpwNfEkxjh",
		Title:    "White Ferrari",
		Artists:  []string{"Frank Ocean"},
		Duration: 249000,
	}
}

func TestM3UEncoder(t *testing.T) {
	chtmp(t)

	encoder, err := (&Playlist{Name: "Favorites"}).Encoder("m3u")
	assert.NoError(t, err)
	assert.NoError(t, encoder.Add(testTrack()))
	assert.NoError(t, encoder.Close())

	data, err := os.ReadFile("Favorites.m3u")
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "#EXTM3U", lines[0])
	assert.Equal(t, "#EXTINF:249,Frank Ocean - White Ferrari", lines[1])
	assert.Equal(t, "Frank Ocean - White Ferrari.mp3", lines[2])
}

func TestPLSEncoder(t *testing.T) {
	chtmp(t)

	encoder, err := (&Playlist{Name: "Favorites"}).Encoder("pls")
	assert.NoError(t, err)
	assert.NoError(t, encoder.Add(testTrack()))
	assert.NoError(t, encoder.Close())

	data, err := os.ReadFile("Favorites.pls")
	assert.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "[playlist]")
	assert.Contains(t, content, "File1=Frank Ocean - White Ferrari.mp3")
	assert.Contains(t, content, "Length1=249")
	assert.Contains(t, content, "NumberOfEntries=1")
}

func TestEncoderUnsupported(t *testing.T) {
	_, err := (&Playlist{Name: "Favorites"}).Encoder("xspf")
	assert.Error(t, err)
}
