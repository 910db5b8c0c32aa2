package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spotisync/spotisync/entity/index"
	"github.com/spotisync/spotisync/spotify"
)

var (
	spotifyClient *spotify.Client
	cmdRoot       = &cobra.Command{
		Use:     "spotisync",
		Short:   "Synchronize Spotify collections resolving tracks against external providers",
		Version: "1.0.0",
	}
	indexData = index.New()
)

func Execute() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
