package cmd

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/agnivade/levenshtein"

	"github.com/spotisync/spotisync/entity"
)

const (
	// affinityFloor keeps wild guesses out of the suggestion list.
	affinityFloor    = 0.55
	affinityMatches  = 10
	affinityExactGap = 3
)

var (
	fillerTerms = regexp.MustCompile(`(?i)\b(feat|ft|remix|mix|edit|version|original)\b`)
	spaces      = regexp.MustCompile(`\s+`)
)

// cleanTerm flattens a name for comparison: separators, brackets and
// filler terms all collapse into plain lowercased words.
func cleanTerm(input string) string {
	term := strings.ToLower(input)
	term = strings.ReplaceAll(term, "&", "and")
	term = strings.NewReplacer("-", " ", "_", " ", ".", " ", "(", " ", ")", " ", "[", " ", "]", " ").Replace(term)
	term = fillerTerms.ReplaceAllString(term, " ")
	return strings.TrimSpace(spaces.ReplaceAllString(term, " "))
}

// nameAffinity measures how much a local filename looks like the
// track's canonical "artist - title" name. A filename within a few
// edits of the exact name short-circuits to full affinity.
func nameAffinity(filename string, track *entity.Track) float64 {
	var (
		stem      = cleanTerm(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
		canonical = cleanTerm(track.Artist() + " " + track.Title)
		base      = cleanTerm(track.Artist() + " " + track.Song())
	)
	if levenshtein.ComputeDistance(stem, canonical) <= affinityExactGap {
		return 1.0
	}

	jaroWinkler := metrics.NewJaroWinkler()
	affinity := strutil.Similarity(stem, canonical, jaroWinkler)
	if baseAffinity := strutil.Similarity(stem, base, jaroWinkler); baseAffinity > affinity {
		affinity = baseAffinity
	}
	return affinity
}

// fuzzySearchLocalFiles ranks the library's files by name affinity with
// the given track, best first.
func fuzzySearchLocalFiles(dir string, track *entity.Track) ([]string, error) {
	type scoredMatch struct {
		path     string
		affinity float64
	}

	var matches []scoredMatch
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() ||
			!strings.HasSuffix(strings.ToLower(path), entity.TrackFormat) {
			return nil
		}
		if affinity := nameAffinity(path, track); affinity >= affinityFloor {
			matches = append(matches, scoredMatch{path, affinity})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].affinity > matches[j].affinity
	})

	results := make([]string, 0, affinityMatches)
	for _, match := range matches {
		if len(results) == affinityMatches {
			break
		}
		results = append(results, match.path)
	}
	return results, nil
}
