// Package processor applies post-download transformations: metadata
// tagging on the audio file and normalization of artwork blobs.
package processor

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"

	"github.com/spotisync/spotisync/entity"
	"github.com/spotisync/spotisync/entity/id3"
	"github.com/spotisync/spotisync/util"
)

// Do stamps the track's downloaded file with its editorial metadata,
// artwork and lyrics.
func Do(track *entity.Track) error {
	tag, err := id3.Open(track.Path().Download(), id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	tag.SetTitle(track.Title)
	tag.SetArtist(strings.Join(track.Artists, ", "))
	tag.SetAlbum(track.Album)
	tag.SetYear(strconv.Itoa(track.Year))
	tag.SetTrackNumber(strconv.Itoa(track.Number))
	tag.SetDuration(strconv.Itoa(track.Duration))
	tag.SetSpotifyID(track.ID)
	tag.SetUpstreamURL(track.UpstreamURL)
	tag.SetArtworkURL(track.Artwork.URL)

	if artwork := util.ErrWrap([]byte{})(os.ReadFile(track.Path().Artwork())); len(artwork) > 0 {
		tag.SetAttachedPicture(artwork)
	}
	lyrics := util.Fallback(track.Lyrics,
		string(util.ErrWrap([]byte{})(os.ReadFile(track.Path().Lyrics()))))
	if lyrics != "" {
		tag.SetLyrics(track.Title, lyrics)
	}
	if err := tag.Save(); err != nil {
		return err
	}
	return verify(track)
}

// verify re-reads the saved file and checks the catalog ID stuck:
// a truncated write would otherwise only surface at the next sync.
func verify(track *entity.Track) error {
	tag, err := id3.Open(track.Path().Download(), id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	if tag.SpotifyID() != track.ID {
		return fmt.Errorf("processor: tag verification failed for %s", track.Title)
	}
	return nil
}
