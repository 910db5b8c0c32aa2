// Package provider adapts the download platform's search surfaces into
// resolution candidates. The music index is the primary source; the
// plain video results page acts as a fallback when the index returns
// nothing usable.
package provider

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/spotisync/spotisync/resolver"
)

const (
	searchTimeout = 30 * time.Second
	userAgent     = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client implements resolver.Searcher.
type Client struct {
	httpClient *http.Client
}

func New() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: searchTimeout},
	}
}

// Search runs a free-text query against the music index, topping the
// pool up from the results-page fallback when the index runs dry.
func (client *Client) Search(ctx context.Context, query string, limit int) ([]resolver.Candidate, error) {
	candidates, err := client.searchMusic(ctx, query, limit, resolver.SourceFreeText)
	if err != nil || len(candidates) == 0 {
		fallback, fallbackErr := client.searchResultsPage(ctx, query, limit)
		if fallbackErr == nil && len(fallback) > 0 {
			return fallback, nil
		}
		if err != nil {
			return nil, err
		}
	}
	return candidates, nil
}

// SearchIdentifier runs an identifier-biased query: the code itself as
// the search string, unfiltered, since some index entries are reachable
// by their recording code even though the index cannot filter on it.
func (client *Client) SearchIdentifier(ctx context.Context, isrc string, limit int) ([]resolver.Candidate, error) {
	return client.searchMusic(ctx, isrc, limit, resolver.SourceIdentifier)
}
