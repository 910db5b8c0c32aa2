package playlist

import (
	"fmt"

	"github.com/spotisync/spotisync/entity"
)

type Playlist struct {
	ID     string
	Name   string
	Owner  string
	Tracks []*entity.Track
}

// Encoder emits a playlist wrapper file, one track at a time.
type Encoder interface {
	Add(*entity.Track) error
	Close() error
}

func (playlist *Playlist) Encoder(encoding string) (Encoder, error) {
	switch encoding {
	case "m3u":
		return newM3UEncoder(playlist)
	case "pls":
		return newPLSEncoder(playlist)
	default:
		return nil, fmt.Errorf("unsupported playlist encoding: %s", encoding)
	}
}
