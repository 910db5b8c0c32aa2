package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/spotisync/spotisync/resolver"
)

const (
	musicSearchURL = "https://music.youtube.com/youtubei/v1/search?prettyPrint=false"
	// songsFilter narrows the music index to song entries, skipping
	// albums, playlists and channel shelves.
	songsFilter = "EgWKAQIIAWoKEAkQBRAKEAMQBA%3D%3D"
)

var clipDuration = regexp.MustCompile(`^\d+:\d{2}(:\d{2})?$`)

type musicSearchRequest struct {
	Context struct {
		Client struct {
			ClientName    string `json:"clientName"`
			ClientVersion string `json:"clientVersion"`
			HL            string `json:"hl"`
		} `json:"client"`
	} `json:"context"`
	Query  string `json:"query"`
	Params string `json:"params,omitempty"`
}

// searchMusic queries the music index. Identifier queries go out
// unfiltered: the songs filter hides entries only reachable by code.
func (client *Client) searchMusic(ctx context.Context, query string, limit int, source resolver.Source) ([]resolver.Candidate, error) {
	body := musicSearchRequest{Query: query}
	body.Context.Client.ClientName = "WEB_REMIX"
	body.Context.Client.ClientVersion = "1.20240101.00.00"
	body.Context.Client.HL = "en"
	if source == resolver.SourceFreeText {
		body.Params = songsFilter
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, musicSearchURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", userAgent)
	request.Header.Set("Origin", "https://music.youtube.com")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider: music search status %d", response.StatusCode)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}
	return parseMusicSearch(data, limit, source), nil
}

// parseMusicSearch walks the music index response shelves, pulling a
// candidate out of every responsive list item it can make sense of.
func parseMusicSearch(data []byte, limit int, source resolver.Source) []resolver.Candidate {
	var candidates []resolver.Candidate

	sections := jsoniter.Get(data,
		"contents", "tabbedSearchResultsRenderer", "tabs", 0,
		"tabRenderer", "content", "sectionListRenderer", "contents")
	for sectionIndex := 0; sectionIndex < sections.Size(); sectionIndex++ {
		shelf := sections.Get(sectionIndex, "musicShelfRenderer", "contents")
		for itemIndex := 0; itemIndex < shelf.Size(); itemIndex++ {
			item := shelf.Get(itemIndex, "musicResponsiveListItemRenderer")
			if item.LastError() != nil {
				continue
			}
			candidate := musicItemCandidate(item, source)
			if !candidate.Valid() {
				continue
			}
			candidates = append(candidates, candidate)
			if limit > 0 && len(candidates) >= limit {
				return candidates
			}
		}
	}
	return candidates
}

// musicItemCandidate decodes one responsive list item. The second flex
// column carries artist, album and duration runs separated by bullet
// runs: classification goes by browse endpoint page type, with the
// duration recognized by shape.
func musicItemCandidate(item jsoniter.Any, source resolver.Source) resolver.Candidate {
	candidate := resolver.Candidate{
		ID:     item.Get("playlistItemData", "videoId").ToString(),
		Title:  flexColumnText(item, 0),
		Source: source,
		Extra:  map[string]string{},
	}

	runs := item.Get("flexColumns", 1,
		"musicResponsiveListItemFlexColumnRenderer", "text", "runs")
	for index := 0; index < runs.Size(); index++ {
		run := runs.Get(index)
		text := strings.TrimSpace(run.Get("text").ToString())
		if text == "" || text == "•" {
			continue
		}

		pageType := run.Get("navigationEndpoint", "browseEndpoint",
			"browseEndpointContextSupportedConfigs",
			"browseEndpointContextMusicConfig", "pageType").ToString()
		switch {
		case strings.Contains(pageType, "ARTIST"), strings.Contains(pageType, "USER_CHANNEL"):
			candidate.Artists = append(candidate.Artists, text)
		case strings.Contains(pageType, "ALBUM"):
			candidate.Album = text
		case clipDuration.MatchString(text):
			candidate.Duration = clipSeconds(text)
			candidate.Extra["duration"] = text
		case len(candidate.Artists) == 0:
			// plain run ahead of any typed one, most likely
			// an artist without a dedicated channel
			candidate.Artists = append(candidate.Artists, text)
		}
	}
	return candidate
}

func flexColumnText(item jsoniter.Any, index int) string {
	return item.Get("flexColumns", index,
		"musicResponsiveListItemFlexColumnRenderer",
		"text", "runs", 0, "text").ToString()
}

// clipSeconds parses a [hh:]mm:ss clip length.
func clipSeconds(text string) float64 {
	seconds := 0
	for _, part := range strings.Split(text, ":") {
		value, err := strconv.Atoi(part)
		if err != nil {
			return 0
		}
		seconds = seconds*60 + value
	}
	return float64(seconds)
}
