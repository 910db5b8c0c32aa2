package entity

import (
	"fmt"
	"path"
	"strings"

	"github.com/gosimple/slug"
	"github.com/spotisync/spotisync/util"
)

type Artwork struct {
	URL  string
	Data []byte
}

// Track is the upstream (Spotify) representation of a song:
// the target of every resolution attempt. It is built once from
// catalog data and never mutated past fetch, except for the
// collected assets (artwork data, lyrics, upstream URL).
type Track struct {
	ID          string
	Title       string
	Artists     []string // first entry is the primary credited artist
	Album       string
	Artwork     Artwork
	Duration    int    // in milliseconds, 0 when unknown
	ISRC        string // International Standard Recording Code, optional
	Lyrics      string
	Number      int // track number within the album
	Year        int
	UpstreamURL string // URL to the upstream blob the song's been downloaded from
}

type TrackPath struct {
	track *Track
}

const (
	TrackFormat   = "mp3"
	ArtworkFormat = "jpg"
	LyricsFormat  = "txt"
)

// certain track titles include the variant description,
// this functions aims to strip out that part:
// > Title: Name - Acoustic
// > Song:  Name
func (track *Track) Song() (song string) {
	// it can very easily happen to encounter tracks
	// that contains artifacts in the title which do not
	// really define them as songs, rather indicate
	// the variant of the song
	song = track.Title
	song = strings.Split(song+" - ", " - ")[0]
	song = strings.Split(song+" (", " (")[0]
	song = strings.Split(song+" [", " [")[0]
	return
}

// Artist returns the primary credited artist.
func (track *Track) Artist() string {
	if len(track.Artists) == 0 {
		return ""
	}
	return track.Artists[0]
}

// Seconds returns the track duration in seconds, 0 when unknown.
func (track *Track) Seconds() float64 {
	return float64(track.Duration) / 1000.0
}

func (track *Track) Path() TrackPath {
	return TrackPath{track}
}

func (trackPath TrackPath) Final() string {
	primaryArtist := strings.ReplaceAll(trackPath.track.Artist(), ".", "")

	// fold the variant qualifier trailing a dash into parentheses:
	// > Name - Acoustic
	// > Name (Acoustic)
	title := trackPath.track.Title
	if index := strings.Index(title, " - "); index > 0 {
		title = fmt.Sprintf("%s (%s)",
			strings.TrimSpace(title[:index]), strings.TrimSpace(title[index+3:]))
	}

	if len(trackPath.track.Artists) > 1 {
		featured := make([]string, 0, len(trackPath.track.Artists)-1)
		for _, artist := range trackPath.track.Artists[1:] {
			featured = append(featured, strings.ReplaceAll(artist, ".", ""))
		}
		title = fmt.Sprintf("%s (ft %s)", title, strings.Join(featured, ", "))
	}

	return util.LegalizeFilename(fmt.Sprintf("%s - %s.%s", primaryArtist, title, TrackFormat))
}

func (trackPath TrackPath) Download() string {
	return util.CacheFile(
		util.LegalizeFilename(fmt.Sprintf("%s.%s", slug.Make(trackPath.track.ID), TrackFormat)),
	)
}

func (trackPath TrackPath) Artwork() string {
	return util.CacheFile(
		util.LegalizeFilename(fmt.Sprintf("%s.%s", slug.Make(path.Base(trackPath.track.Artwork.URL)), ArtworkFormat)),
	)
}

func (trackPath TrackPath) Lyrics() string {
	return util.CacheFile(
		util.LegalizeFilename(fmt.Sprintf("%s.%s", slug.Make(trackPath.track.ID), LyricsFormat)),
	)
}
