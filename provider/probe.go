package provider

import (
	"context"

	"github.com/kkdai/youtube/v2"
)

// Prober implements resolver.Prober against the download platform's
// player metadata.
type Prober struct {
	client youtube.Client
}

func NewProber() *Prober {
	return &Prober{}
}

// Playable reports whether a candidate can actually be fetched: region
// locks, age gates and takedowns all shake out here rather than at
// download time.
func (prober *Prober) Playable(ctx context.Context, id string) bool {
	video, err := prober.client.GetVideoContext(ctx, id)
	if err != nil {
		return false
	}
	return len(video.Formats.WithAudioChannels()) > 0
}
