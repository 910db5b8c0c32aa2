// Package musicbrainz backfills recording codes for tracks the catalog
// serves without one, so the identifier-first resolution leg still has
// something to go on.
package musicbrainz

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"

	"github.com/spotisync/spotisync/entity"
)

const (
	recordingURL = "https://musicbrainz.org/ws/2/recording"
	// scoreFloor guards against lookalike recordings: anything the
	// index itself is not confident about is not worth trusting.
	scoreFloor = 80
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type recordingResponse struct {
	Recordings []struct {
		Score int      `json:"score"`
		ISRCs []string `json:"isrcs"`
	} `json:"recordings"`
}

type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
}

// New builds a client honoring the service's one-request-per-second
// policy. The user agent is required to be descriptive.
func New(version string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(time.Second), 1),
		userAgent:  fmt.Sprintf("spotisync/%s ( https://github.com/spotisync/spotisync )", version),
	}
}

// ISRC looks the track's recording code up by artist and title. An
// empty result is not an error: plenty of recordings simply have no
// code on file.
func (client *Client) ISRC(ctx context.Context, track *entity.Track) (string, error) {
	if err := client.limiter.Wait(ctx); err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("query", fmt.Sprintf(`artist:"%s" AND recording:"%s"`, track.Artist(), track.Song()))
	query.Set("fmt", "json")
	query.Set("limit", "5")

	request, err := http.NewRequestWithContext(ctx, http.MethodGet,
		recordingURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", err
	}
	request.Header.Set("User-Agent", client.userAgent)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("musicbrainz: recording search status %d", response.StatusCode)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	var parsed recordingResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", err
	}
	return bestISRC(parsed), nil
}

func bestISRC(parsed recordingResponse) string {
	for _, recording := range parsed.Recordings {
		if recording.Score > scoreFloor && len(recording.ISRCs) > 0 {
			return recording.ISRCs[0]
		}
	}
	return ""
}
