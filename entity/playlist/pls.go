package playlist

import (
	"fmt"
	"os"

	"github.com/spotisync/spotisync/entity"
	"github.com/spotisync/spotisync/util"
)

type plsEncoder struct {
	file    *os.File
	counter int
}

func newPLSEncoder(playlist *Playlist) (Encoder, error) {
	file, err := os.Create(util.LegalizeFilename(playlist.Name) + ".pls")
	if err != nil {
		return nil, err
	}

	if _, err := fmt.Fprintln(file, "[playlist]"); err != nil {
		file.Close()
		return nil, err
	}
	return &plsEncoder{file: file}, nil
}

func (encoder *plsEncoder) Add(track *entity.Track) error {
	encoder.counter++
	_, err := fmt.Fprintf(encoder.file,
		"File%d=%s\nTitle%d=%s - %s\nLength%d=%d\n",
		encoder.counter, track.Path().Final(),
		encoder.counter, track.Artist(), track.Title,
		encoder.counter, track.Duration/1000)
	return err
}

func (encoder *plsEncoder) Close() error {
	defer encoder.file.Close()
	_, err := fmt.Fprintf(encoder.file, "NumberOfEntries=%d\nVersion=2\n", encoder.counter)
	return err
}
