// Package downloader fetches remote resources to disk: audio through
// the yt-dlp executable, everything else over plain HTTP.
package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/spotisync/spotisync/entity"
)

const (
	clipTimeout = 10 * time.Minute
	blobTimeout = 30 * time.Second
)

var httpClient = &http.Client{Timeout: blobTimeout}

// Processor transforms downloaded bytes before they hit disk.
type Processor interface {
	Do(data []byte) ([]byte, error)
}

// Download fetches the given URL to the given path, running the bytes
// through the processor (if any) and fanning them out to the given
// channels. Clip URLs route through yt-dlp, which does its own
// transcoding and writes the file itself.
func Download(url, path string, processor Processor, channels ...chan []byte) error {
	if isClip(url) {
		return clip(url, path)
	}
	return blob(url, path, processor, channels...)
}

func isClip(url string) bool {
	return strings.Contains(url, "youtube.com/") || strings.Contains(url, "youtu.be/")
}

// clip shells out to yt-dlp for the audio stream. Partial output gets
// cleaned up on failure so a retry starts from scratch.
func clip(url, path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), clipTimeout)
	defer cancel()

	command := exec.CommandContext(ctx, "yt-dlp",
		"--format", "bestaudio",
		"--extract-audio",
		"--audio-format", entity.TrackFormat,
		"--audio-quality", "0",
		"--retry-sleep", "exp=1::2",
		"--sleep-interval", "5",
		"--output", path,
		url,
	)
	if output, err := command.CombinedOutput(); err != nil {
		os.Remove(path)
		os.Remove(path + ".part")
		return fmt.Errorf("downloader: yt-dlp: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// blob fetches a plain resource into memory, processes it and lands it
// on disk.
func blob(url, path string, processor Processor, channels ...chan []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), blobTimeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	response, err := httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("downloader: status %d for %s", response.StatusCode, url)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if processor != nil {
		if data, err = processor.Do(data); err != nil {
			return err
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	for _, channel := range channels {
		channel <- data
	}
	return nil
}
