// Package spotify adapts the upstream catalog service: authentication,
// collection fetching and authoritative ISRC lookups.
package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/thanhpk/randstr"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"

	"github.com/spotisync/spotisync/entity"
)

const (
	envClientID  = "SPOTIFY_ID"
	envClientKey = "SPOTIFY_KEY"
	redirectURL  = "http://127.0.0.1:8080/callback"
	authTimeout  = 5 * time.Minute
)

// ErrMissingCredentials is raised at construction time, never per-call:
// without an application ID and key there is no client to build.
var ErrMissingCredentials = errors.New(
	"spotify: " + envClientID + " and " + envClientKey + " environment variables must be set")

type Client struct {
	*spotify.Client
}

// Processor lands the user on the authorization URL.
type Processor func(url string) error

// BrowserProcessor opens the authorization URL in the default browser.
func BrowserProcessor(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

// TerminalProcessor prints the authorization URL for headless setups.
func TerminalProcessor(url string) error {
	_, err := fmt.Println("authenticate at: " + url)
	return err
}

// Authenticate builds a client for the credentials found in the
// environment (a .env file is honored), restoring a previously
// persisted session when one exists and walking the user through the
// authorization-code flow otherwise.
func Authenticate(processor Processor) (*Client, error) {
	// a missing .env file is fine, credentials may come
	// from the environment proper
	_ = godotenv.Load()

	id, key := os.Getenv(envClientID), os.Getenv(envClientKey)
	if id == "" || key == "" {
		return nil, ErrMissingCredentials
	}

	authenticator := spotifyauth.New(
		spotifyauth.WithClientID(id),
		spotifyauth.WithClientSecret(key),
		spotifyauth.WithRedirectURL(redirectURL),
		spotifyauth.WithScopes(
			spotifyauth.ScopeUserLibraryRead,
			spotifyauth.ScopePlaylistReadPrivate,
			spotifyauth.ScopePlaylistReadCollaborative,
		),
	)

	ctx := context.Background()
	if token, err := restoreToken(); err == nil {
		return &Client{spotify.New(authenticator.Client(ctx, token), spotify.WithRetry(true))}, nil
	}

	token, err := authorize(ctx, authenticator, processor)
	if err != nil {
		return nil, err
	}
	persistToken(token)

	return &Client{spotify.New(authenticator.Client(ctx, token), spotify.WithRetry(true))}, nil
}

// authorize runs the local callback server half of the
// authorization-code flow.
func authorize(ctx context.Context, authenticator *spotifyauth.Authenticator, processor Processor) (*oauth2.Token, error) {
	var (
		state    = randstr.Hex(16)
		tokens   = make(chan *oauth2.Token, 1)
		failures = make(chan error, 1)
		mux      = http.NewServeMux()
		server   = &http.Server{Addr: ":8080", Handler: mux}
	)
	mux.HandleFunc("/callback", func(writer http.ResponseWriter, request *http.Request) {
		token, err := authenticator.Token(request.Context(), state, request)
		if err != nil {
			http.Error(writer, "authorization failed", http.StatusForbidden)
			failures <- err
			return
		}
		fmt.Fprintln(writer, "all set, you can close this window")
		tokens <- token
	})

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failures <- err
		}
	}()
	defer server.Shutdown(ctx)

	if err := processor(authenticator.AuthURL(state)); err != nil {
		return nil, err
	}

	select {
	case token := <-tokens:
		return token, nil
	case err := <-failures:
		return nil, err
	case <-time.After(authTimeout):
		return nil, errors.New("spotify: authorization timed out")
	}
}

// trackEntity converts an upstream track record into the
// application representation.
func trackEntity(track *spotify.FullTrack) *entity.Track {
	artists := make([]string, 0, len(track.Artists))
	for _, artist := range track.Artists {
		artists = append(artists, artist.Name)
	}

	artworkURL := ""
	if len(track.Album.Images) > 0 {
		artworkURL = track.Album.Images[0].URL
	}

	return &entity.Track{
		ID:       track.ID.String(),
		Title:    track.Name,
		Artists:  artists,
		Album:    track.Album.Name,
		Artwork:  entity.Artwork{URL: artworkURL},
		Duration: int(track.Duration),
		ISRC:     track.ExternalIDs["isrc"],
		Number:   int(track.TrackNumber),
		Year:     track.Album.ReleaseDateTime().Year(),
	}
}

// flush fans a track out to every given channel.
func flush(track *entity.Track, channels ...chan interface{}) {
	for _, channel := range channels {
		channel <- track
	}
}
