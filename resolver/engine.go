package resolver

import (
	"context"
	"errors"
	"strings"

	"github.com/spotisync/spotisync/entity"
	"github.com/spotisync/spotisync/similarity"
)

// Collaborator interfaces. Network failures behind any of them are
// absorbed into the next fallback stage: the engine always terminates
// in a match or in unresolved, never in a transport error.

// Lookup maps an ISRC to authoritative editorial metadata.
type Lookup interface {
	TrackByISRC(ctx context.Context, isrc string) (*entity.Track, error)
}

// Searcher queries the download platform for candidates.
type Searcher interface {
	// SearchIdentifier runs an identifier-biased query, exploiting the
	// fact that some indexes return the exact recording for its code.
	SearchIdentifier(ctx context.Context, isrc string, limit int) ([]Candidate, error)
	// Search runs a free-text query.
	Search(ctx context.Context, query string, limit int) ([]Candidate, error)
}

// Prober verifies a candidate identifier is actually playable,
// i.e. not removed, region-locked or age-restricted.
type Prober interface {
	Playable(ctx context.Context, id string) bool
}

// ErrNoSearcher is the one construction-time failure: without a search
// collaborator there is nothing to resolve against.
var ErrNoSearcher = errors.New("resolver: no searcher configured")

const (
	// identifierThreshold gates the strict identifier-biased leg.
	identifierThreshold = 0.75
	// collision gates: an identifier result whose editorial metadata
	// drifts below these against the authoritative record is a
	// reused or misindexed code, not a match.
	collisionTitleFloor  = 0.5
	collisionArtistFloor = 0.7
	// identifier searches rarely return more than a handful of
	// entries; below this count the free-text pool joins in.
	identifierPoolFloor = 3
)

// Engine is the ISRC-first resolution pipeline. It is stateless across
// calls and safe for concurrent use: every Resolve is a pure function
// of its inputs and of remote index state at call time.
type Engine struct {
	lookup    Lookup // optional
	searcher  Searcher
	prober    Prober  // optional
	weights   Weights
	threshold float64 // metadata leg acceptance, caller-tunable
	limit     int     // free-text result cap
	verbose   func(format string, args ...interface{})
}

type Option func(*Engine)

// WithWeights overrides the canonical scoring table.
func WithWeights(weights Weights) Option {
	return func(engine *Engine) { engine.weights = weights }
}

// WithThreshold overrides the metadata-leg confidence threshold.
func WithThreshold(threshold float64) Option {
	return func(engine *Engine) { engine.threshold = threshold }
}

// WithLimit overrides the free-text search result cap.
func WithLimit(limit int) Option {
	return func(engine *Engine) { engine.limit = limit }
}

// WithVerbose routes the engine's diagnostic lines (collision
// detections, fallbacks) to the given printf-style sink.
func WithVerbose(verbose func(format string, args ...interface{})) Option {
	return func(engine *Engine) { engine.verbose = verbose }
}

func New(lookup Lookup, searcher Searcher, prober Prober, options ...Option) (*Engine, error) {
	if searcher == nil {
		return nil, ErrNoSearcher
	}

	engine := &Engine{
		lookup:    lookup,
		searcher:  searcher,
		prober:    prober,
		weights:   DefaultWeights(),
		threshold: 0.50,
		limit:     20,
		verbose:   func(string, ...interface{}) {},
	}
	for _, option := range options {
		option(engine)
	}
	return engine, nil
}

// Resolve maps the target onto the single download-platform entry that
// is acoustically and editorially equivalent to it, or reports
// unresolved (nil match). The only returned error is the context's.
func (engine *Engine) Resolve(ctx context.Context, target *entity.Track) (*Match, error) {
	if target.ISRC != "" && engine.lookup != nil {
		match, fallback, err := engine.resolveIdentifier(ctx, target)
		if err != nil {
			return nil, err
		}
		if match != nil {
			return match, nil
		}
		if fallback != nil {
			// identifier leg burned out: retry on metadata only,
			// with the identifier cleared to dodge the collision
			return engine.resolveMetadata(ctx, fallback)
		}
	}
	return engine.resolveMetadata(ctx, target)
}

// resolveIdentifier runs the strict leg: authoritative lookup,
// identifier-biased search, collision check, accessibility probe.
// It returns either an accepted match, or the surrogate target to
// retry the metadata leg with, or neither (caller proceeds with the
// original target).
func (engine *Engine) resolveIdentifier(ctx context.Context, target *entity.Track) (*Match, *entity.Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	authoritative, err := engine.lookup.TrackByISRC(ctx, target.ISRC)
	if err != nil || authoritative == nil {
		// lookup unreachable or code unknown: not fatal,
		// the metadata leg runs on the caller's own record
		engine.verbose("lookup for %s yielded nothing, skipping identifier leg", target.ISRC)
		return nil, nil, ctx.Err()
	}
	authoritative.ISRC = target.ISRC

	candidates, err := engine.searcher.SearchIdentifier(ctx, target.ISRC, 10)
	if err != nil {
		engine.verbose("identifier search for %s failed: %s", target.ISRC, err)
		candidates = nil
	}
	if len(candidates) < identifierPoolFloor {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		supplement, err := engine.searcher.Search(ctx, metadataQuery(authoritative), engine.limit)
		if err == nil {
			candidates = append(candidates, supplement...)
		}
	}

	match, ok := Rank(authoritative, Dedupe(candidates), identifierThreshold, engine.weights)
	if !ok {
		return nil, surrogate(authoritative), ctx.Err()
	}

	// collision check: compare the pick's editorial metadata against
	// the authoritative record, independently of the scorer. Same
	// code, different song happens when codes get reused or misindexed.
	if similarity.Title(authoritative.Title, match.Candidate.Title) < collisionTitleFloor ||
		similarity.Artist(authoritative.Artist(), match.Candidate.Artists) < collisionArtistFloor {
		engine.verbose("collision on %s: expected %s by %s, got %s by %s",
			target.ISRC, authoritative.Title, authoritative.Artist(),
			match.Candidate.Title, strings.Join(match.Candidate.Artists, ", "))
		return nil, surrogate(authoritative), ctx.Err()
	}

	if engine.prober != nil && !engine.prober.Playable(ctx, match.Candidate.ID) {
		engine.verbose("%s resolved to unplayable entry %s, falling back",
			target.ISRC, match.Candidate.ID)
		return nil, surrogate(authoritative), ctx.Err()
	}

	return match, nil, nil
}

// resolveMetadata runs the free-text leg against
// the engine's configured threshold.
func (engine *Engine) resolveMetadata(ctx context.Context, target *entity.Track) (*Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	candidates, err := engine.searcher.Search(ctx, metadataQuery(target), engine.limit)
	if err != nil {
		engine.verbose("metadata search for %s failed: %s", target.Title, err)
		return nil, ctx.Err()
	}

	match, _ := Rank(target, Dedupe(candidates), engine.threshold, engine.weights)
	return match, ctx.Err()
}

// surrogate clones the authoritative record with the identifier
// cleared, so the retry cannot trip on the same collision.
func surrogate(authoritative *entity.Track) *entity.Track {
	clone := *authoritative
	clone.ISRC = ""
	return &clone
}

func metadataQuery(target *entity.Track) string {
	parts := []string{target.Title, target.Artist()}
	if target.Album != "" {
		parts = append(parts, target.Album)
	}
	return strings.Join(parts, " ")
}
