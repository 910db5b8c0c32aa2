// Package index keeps track of which songs already live in the local
// library, keyed by their Spotify ID, so that synchronization only
// touches what is missing or explicitly flushed.
package index

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bogem/id3v2/v2"
	"github.com/spotisync/spotisync/entity"
	"github.com/spotisync/spotisync/entity/id3"
)

const (
	Offline int = iota // found locally, not (yet) seen upstream
	Online             // seen upstream, to be synchronized
	Installed          // synchronized and moved in place
	Flush              // forced re-synchronization
)

type Index struct {
	mutex sync.RWMutex
	data  map[string]int
}

func New() *Index {
	return &Index{data: make(map[string]int)}
}

// Build scans path for already-synchronized songs, i.e. tracks
// carrying a Spotify ID frame.
func (index *Index) Build(path string) error {
	return filepath.Walk(path, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() ||
			!strings.HasSuffix(strings.ToLower(path), entity.TrackFormat) {
			return err
		}

		tag, err := id3.Open(path, id3v2.Options{Parse: true})
		if err != nil {
			// unreadable tags do not count as synchronized
			return nil
		}
		defer tag.Close()

		if id := tag.SpotifyID(); len(id) > 0 {
			index.mutex.Lock()
			index.data[id] = Offline
			index.mutex.Unlock()
		}
		return nil
	})
}

func (index *Index) Get(track *entity.Track) (int, bool) {
	index.mutex.RLock()
	defer index.mutex.RUnlock()

	status, ok := index.data[track.ID]
	return status, ok
}

func (index *Index) Set(track *entity.Track, status int) {
	index.mutex.Lock()
	defer index.mutex.Unlock()

	index.data[track.ID] = status
}

// SetPath reads the Spotify ID off the file at path
// and records the given status for it.
func (index *Index) SetPath(path string, status int) {
	tag, err := id3.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return
	}
	defer tag.Close()

	if id := tag.SpotifyID(); len(id) > 0 {
		index.mutex.Lock()
		index.data[id] = status
		index.mutex.Unlock()
	}
}

// Size returns the number of indexed tracks, optionally
// counting only those in the given status.
func (index *Index) Size(status ...int) int {
	index.mutex.RLock()
	defer index.mutex.RUnlock()

	if len(status) == 0 {
		return len(index.data)
	}

	counter := 0
	for _, entry := range index.data {
		if entry == status[0] {
			counter++
		}
	}
	return counter
}
