package spotify

import (
	"context"

	"github.com/zmb3/spotify/v2"

	"github.com/spotisync/spotisync/entity"
)

// TrackByISRC resolves an ISRC to its authoritative editorial metadata
// through the catalog's identifier search. An unknown code yields
// (nil, nil): not an error, just nothing to lean on.
func (client *Client) TrackByISRC(ctx context.Context, isrc string) (*entity.Track, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	result, err := client.Search(ctx, "isrc:"+isrc, spotify.SearchTypeTrack, spotify.Limit(1))
	if err != nil {
		return nil, err
	}

	if result.Tracks == nil || len(result.Tracks.Tracks) == 0 {
		return nil, nil
	}
	return trackEntity(&result.Tracks.Tracks[0]), nil
}
