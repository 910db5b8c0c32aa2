package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	jsoniter "github.com/json-iterator/go"

	"github.com/spotisync/spotisync/resolver"
)

const resultsURL = "https://www.youtube.com/results?search_query=%s"

// searchResultsPage scrapes the plain video results page. It surfaces
// uploads the music index does not carry, at the cost of noisier
// titles for the scorer to weigh.
func (client *Client) searchResultsPage(ctx context.Context, query string, limit int) ([]resolver.Candidate, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf(resultsURL, url.QueryEscape(query)), nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("User-Agent", userAgent)
	request.Header.Set("Accept-Language", "en")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider: results page status %d", response.StatusCode)
	}

	document, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		return nil, err
	}

	data := initialData(document)
	if data == "" {
		return nil, fmt.Errorf("provider: results page data not found")
	}
	return parseResultsPage([]byte(data), limit), nil
}

// initialData digs the embedded state object out of the page scripts.
func initialData(document *goquery.Document) string {
	const marker = "var ytInitialData = "

	data := ""
	document.Find("script").EachWithBreak(func(index int, selection *goquery.Selection) bool {
		text := selection.Text()
		start := strings.Index(text, marker)
		if start < 0 {
			return true
		}
		end := strings.LastIndex(text, "};")
		if end <= start {
			return true
		}
		data = text[start+len(marker) : end+1]
		return false
	})
	return data
}

func parseResultsPage(data []byte, limit int) []resolver.Candidate {
	var candidates []resolver.Candidate

	sections := jsoniter.Get(data,
		"contents", "twoColumnSearchResultsRenderer", "primaryContents",
		"sectionListRenderer", "contents")
	for sectionIndex := 0; sectionIndex < sections.Size(); sectionIndex++ {
		items := sections.Get(sectionIndex, "itemSectionRenderer", "contents")
		for itemIndex := 0; itemIndex < items.Size(); itemIndex++ {
			video := items.Get(itemIndex, "videoRenderer")
			if video.LastError() != nil {
				continue
			}

			candidate := resolver.Candidate{
				ID:     video.Get("videoId").ToString(),
				Title:  video.Get("title", "runs", 0, "text").ToString(),
				Source: resolver.SourceFreeText,
				Extra:  map[string]string{"channel": video.Get("ownerText", "runs", 0, "text").ToString()},
			}
			if owner := candidate.Extra["channel"]; owner != "" {
				candidate.Artists = []string{strings.TrimSuffix(owner, " - Topic")}
			}
			if length := video.Get("lengthText", "simpleText").ToString(); clipDuration.MatchString(length) {
				candidate.Duration = clipSeconds(length)
			}
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
