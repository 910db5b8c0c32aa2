package spotify

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/zmb3/spotify/v2"

	"github.com/spotisync/spotisync/entity"
	"github.com/spotisync/spotisync/entity/playlist"
)

const requestTimeout = 30 * time.Second

// id extracts a resource identifier out of a raw ID,
// an open.spotify.com URL or a spotify: URI.
func id(data string) spotify.ID {
	data = strings.TrimSpace(data)
	if index := strings.LastIndex(data, "/"); index >= 0 {
		data = data[index+1:]
	}
	if index := strings.LastIndex(data, ":"); index >= 0 {
		data = data[index+1:]
	}
	if index := strings.Index(data, "?"); index >= 0 {
		data = data[:index]
	}
	return spotify.ID(data)
}

// Playlist fetches a playlist and all of its tracks,
// fanning every track out to the given channels.
func (client *Client) Playlist(playlistID string, channels ...chan interface{}) (*playlist.Playlist, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	fullPlaylist, err := client.GetPlaylist(ctx, id(playlistID))
	if err != nil {
		return nil, err
	}

	entityPlaylist := &playlist.Playlist{
		ID:    fullPlaylist.ID.String(),
		Name:  fullPlaylist.Name,
		Owner: fullPlaylist.Owner.DisplayName,
	}

	page := fullPlaylist.Tracks
	for {
		for index := range page.Tracks {
			track := trackEntity(&page.Tracks[index].Track)
			entityPlaylist.Tracks = append(entityPlaylist.Tracks, track)
			flush(track, channels...)
		}

		pageCtx, pageCancel := context.WithTimeout(context.Background(), requestTimeout)
		err := client.NextPage(pageCtx, &page)
		pageCancel()
		if errors.Is(err, spotify.ErrNoMorePages) {
			return entityPlaylist, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Album fetches an album's tracks. A second batched lookup upgrades the
// album's simple track records to full ones, as only the latter carry
// the ISRC the resolution engine leans on.
func (client *Client) Album(albumID string, channels ...chan interface{}) ([]*entity.Track, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	album, err := client.GetAlbum(ctx, id(albumID))
	if err != nil {
		return nil, err
	}

	ids := make([]spotify.ID, 0, len(album.Tracks.Tracks))
	for _, track := range album.Tracks.Tracks {
		ids = append(ids, track.ID)
	}

	fullTracks, err := client.GetTracks(ctx, ids)
	if err != nil {
		return nil, err
	}

	tracks := make([]*entity.Track, 0, len(fullTracks))
	for _, fullTrack := range fullTracks {
		track := trackEntity(fullTrack)
		tracks = append(tracks, track)
		flush(track, channels...)
	}
	return tracks, nil
}

// Track fetches a single track.
func (client *Client) Track(trackID string, channels ...chan interface{}) (*entity.Track, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	fullTrack, err := client.GetTrack(ctx, id(trackID))
	if err != nil {
		return nil, err
	}

	track := trackEntity(fullTrack)
	flush(track, channels...)
	return track, nil
}

// Library fetches the user's saved tracks, up to
// limit of them (everything if 0).
func (client *Client) Library(limit int, channels ...chan interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	page, err := client.CurrentUsersTracks(ctx, spotify.Limit(50))
	cancel()
	if err != nil {
		return err
	}

	counter := 0
	for {
		for index := range page.Tracks {
			if limit > 0 && counter >= limit {
				return nil
			}
			flush(trackEntity(&page.Tracks[index].FullTrack), channels...)
			counter++
		}

		pageCtx, pageCancel := context.WithTimeout(context.Background(), requestTimeout)
		err := client.NextPage(pageCtx, page)
		pageCancel()
		if errors.Is(err, spotify.ErrNoMorePages) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
