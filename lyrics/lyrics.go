// Package lyrics scrapes track lyrics to embed alongside the audio.
// Failure anywhere in here is cosmetic and never blocks a sync.
package lyrics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	jsoniter "github.com/json-iterator/go"

	"github.com/spotisync/spotisync/entity"
	"github.com/spotisync/spotisync/util"
)

const (
	searchURL      = "https://genius.com/api/search/multi?q=%s"
	requestTimeout = 30 * time.Second
	userAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

var httpClient = &http.Client{Timeout: requestTimeout}

// Search scrapes lyrics for the given track, fanning the result out to
// the given channels. A track nothing can be found for yields an empty
// string and no error.
func Search(ctx context.Context, track *entity.Track, channels ...chan []byte) (string, error) {
	pageURL, err := searchPage(ctx, track)
	if err != nil || pageURL == "" {
		return "", err
	}

	lyrics, err := scrapePage(ctx, pageURL)
	if err != nil {
		return "", err
	}

	if lyrics != "" {
		util.ErrSuppress(os.WriteFile(track.Path().Lyrics(), []byte(lyrics), 0o644))
	}
	for _, channel := range channels {
		channel <- []byte(lyrics)
	}
	return lyrics, nil
}

// searchPage finds the lyrics page URL for a track, if any.
func searchPage(ctx context.Context, track *entity.Track) (string, error) {
	query := url.QueryEscape(track.Song() + " " + track.Artist())
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(searchURL, query), nil)
	if err != nil {
		return "", err
	}
	request.Header.Set("User-Agent", userAgent)

	response, err := httpClient.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lyrics: search status %d", response.StatusCode)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}
	return songPath(data), nil
}

// songPath picks the first song hit out of the search sections.
func songPath(data []byte) string {
	sections := jsoniter.Get(data, "response", "sections")
	for sectionIndex := 0; sectionIndex < sections.Size(); sectionIndex++ {
		section := sections.Get(sectionIndex)
		if section.Get("type").ToString() != "song" {
			continue
		}

		hits := section.Get("hits")
		for hitIndex := 0; hitIndex < hits.Size(); hitIndex++ {
			if path := hits.Get(hitIndex, "result", "url").ToString(); path != "" {
				return path
			}
		}
	}
	return ""
}

// scrapePage pulls the lyrics text out of a lyrics page.
func scrapePage(ctx context.Context, pageURL string) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	request.Header.Set("User-Agent", userAgent)

	response, err := httpClient.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lyrics: page status %d", response.StatusCode)
	}

	document, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	document.Find("div[data-lyrics-container='true']").Each(func(index int, selection *goquery.Selection) {
		selection.Find("br").ReplaceWithHtml("\n")
		builder.WriteString(selection.Text())
		builder.WriteString("\n")
	})
	return strings.TrimSpace(builder.String()), nil
}
