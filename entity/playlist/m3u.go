package playlist

import (
	"fmt"
	"os"

	"github.com/spotisync/spotisync/entity"
	"github.com/spotisync/spotisync/util"
)

type m3uEncoder struct {
	file *os.File
}

func newM3UEncoder(playlist *Playlist) (Encoder, error) {
	file, err := os.Create(util.LegalizeFilename(playlist.Name) + ".m3u")
	if err != nil {
		return nil, err
	}

	if _, err := fmt.Fprintln(file, "#EXTM3U"); err != nil {
		file.Close()
		return nil, err
	}
	return &m3uEncoder{file}, nil
}

func (encoder *m3uEncoder) Add(track *entity.Track) error {
	if _, err := fmt.Fprintf(encoder.file, "#EXTINF:%d,%s - %s\n%s\n",
		track.Duration/1000, track.Artist(), track.Title, track.Path().Final()); err != nil {
		return err
	}
	return nil
}

func (encoder *m3uEncoder) Close() error {
	return encoder.file.Close()
}
