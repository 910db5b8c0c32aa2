package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/bogem/id3v2/v2"
	"github.com/spf13/cobra"
	"github.com/zmb3/spotify/v2"

	"github.com/spotisync/spotisync/downloader"
	"github.com/spotisync/spotisync/entity/id3"
	"github.com/spotisync/spotisync/entity/index"
	"github.com/spotisync/spotisync/processor"
	"github.com/spotisync/spotisync/similarity"
	spotisyncify "github.com/spotisync/spotisync/spotify"
	"github.com/spotisync/spotisync/util"
)

// initMatchFloor gates automatic adoption of a search hit: anything
// less similar goes through the user.
const initMatchFloor = 0.9

func init() {
	cmdRoot.AddCommand(cmdInit())
}

func cmdInit() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Init ID3v2 data for local library",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := util.ErrWrap(xdg.UserDirs.Music)(cmd.Flags().GetString("library"))

			client, err := spotisyncify.Authenticate(spotisyncify.BrowserProcessor)
			if err != nil {
				return err
			}
			return initDirectory(dir, client)
		},
	}
	cmd.Flags().StringP("library", "l", xdg.UserDirs.Music, "Path to music library")
	return cmd
}

func initDirectory(dir string, client *spotisyncify.Client) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".mp3") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if err := initFile(path, client); err != nil {
			tui.AnchorPrintf("init failed for %s: %s", path, err)
		}
	}
	return nil
}

func initFile(path string, client *spotisyncify.Client) error {
	tag, err := id3.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	if id := tag.SpotifyID(); len(id) > 0 {
		tui.Printf("%s already carries a catalog ID, skipping", filepath.Base(path))
		return nil
	}

	// local files follow the "artist - title" stem convention
	stem := util.FileBaseStem(filepath.Base(path))
	parts := strings.SplitN(stem, " - ", 2)
	if len(parts) != 2 {
		return fmt.Errorf("unrecognized file name format: %s", filepath.Base(path))
	}
	artist, title := parts[0], parts[1]

	hits, err := initSearch(client, artist, title)
	if err != nil {
		return err
	}

	var pick *spotify.FullTrack
	if len(hits) > 0 &&
		similarity.Title(title, hits[0].Name) >= initMatchFloor &&
		similarity.Artist(artist, []string{hits[0].Artists[0].Name}) >= initMatchFloor {
		pick = hits[0]
	} else if pick = initPrompt(artist, title, hits); pick == nil {
		tui.Printf("skipped %s", filepath.Base(path))
		return nil
	}

	return initTags(client, path, pick)
}

func initSearch(client *spotisyncify.Client, artist, title string) ([]*spotify.FullTrack, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	query := fmt.Sprintf("artist:%s track:%s", artist, similarity.NormalizeTitle(title))
	results, err := client.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(5))
	if err != nil {
		return nil, err
	}

	var hits []*spotify.FullTrack
	if results.Tracks != nil {
		for index := range results.Tracks.Tracks {
			hits = append(hits, &results.Tracks.Tracks[index])
		}
	}
	return hits, nil
}

func initPrompt(artist, title string, hits []*spotify.FullTrack) *spotify.FullTrack {
	tui.Printf("no confident match for %s - %s", artist, title)
	for index, hit := range hits {
		tui.Printf("%d. %s - %s (album: %s) https://open.spotify.com/track/%s",
			index+1, hit.Artists[0].Name, hit.Name, hit.Album.Name, hit.ID)
	}

	input := tui.Reads("Enter the number of the track to use, or leave empty to skip:")
	if input == "" {
		return nil
	}
	choice, err := strconv.Atoi(input)
	if err != nil || choice < 1 || choice > len(hits) {
		tui.AnchorPrintf("invalid choice")
		return nil
	}
	return hits[choice-1]
}

func initTags(client *spotisyncify.Client, path string, hit *spotify.FullTrack) error {
	track, err := client.Track(hit.ID.String())
	if err != nil {
		return err
	}

	artwork := make(chan []byte, 1)
	defer close(artwork)
	if err := downloader.Download(
		track.Artwork.URL, track.Path().Artwork(),
		processor.Artwork{}, artwork); err != nil {
		return err
	}

	tag, err := id3.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	tag.SetSpotifyID(track.ID)
	tag.SetTitle(track.Title)
	tag.SetArtist(track.Artist())
	tag.SetAlbum(track.Album)
	tag.SetArtworkURL(track.Artwork.URL)
	tag.SetAttachedPicture(<-artwork)
	tag.SetDuration(strconv.Itoa(track.Duration))
	tag.SetTrackNumber(strconv.Itoa(track.Number))
	tag.SetYear(strconv.Itoa(track.Year))
	tag.SetUpstreamURL(track.UpstreamURL)

	if err := tag.Save(); err != nil {
		return err
	}

	indexData.SetPath(path, index.Installed)
	tui.Printf("initialized %s", filepath.Base(path))
	return nil
}
