package spotify

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/oauth2"

	"github.com/spotisync/spotisync/util"
)

const sessionFilename = "session.json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// restoreToken loads a previously persisted OAuth token: the library
// refreshes expired ones on its own as long as the refresh grant holds.
func restoreToken() (*oauth2.Token, error) {
	data, err := os.ReadFile(util.CacheFile(sessionFilename))
	if err != nil {
		return nil, err
	}

	token := new(oauth2.Token)
	if err := json.Unmarshal(data, token); err != nil {
		return nil, err
	}
	return token, nil
}

// persistToken caches the OAuth token for the next run. Failure is not
// worth surfacing: the worst case is authorizing again.
func persistToken(token *oauth2.Token) {
	data, err := json.Marshal(token)
	if err != nil {
		return
	}
	util.ErrSuppress(os.WriteFile(util.CacheFile(sessionFilename), data, 0o600))
}
