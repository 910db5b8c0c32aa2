// Package similarity provides the pure string and duration comparison
// primitives the resolution engine is built on. Every function is total:
// empty or missing input scores 0, never an error.
package similarity

import (
	"regexp"
	"strings"
)

// versionQualifiers lists title artifacts which describe a variant of a
// song rather than the song itself and must not weigh on comparison.
// "sped up" is deliberately absent: sped-up edits are acceptable
// stand-ins when nothing closer is available.
var versionQualifiers = func() []*regexp.Regexp {
	patterns := []string{
		`\(live\)`, `\(live[^)]*\)`, `live at`, `live from`,
		`\(remix\)`, `\(remix[^)]*\)`, `remix by`,
		`\(cover\)`, `\(cover[^)]*\)`, `cover by`,
		`\(acoustic\)`, `\(acoustic[^)]*\)`,
		`\(karaoke\)`, `\(karaoke[^)]*\)`,
		`\(instrumental\)`, `\(instrumental[^)]*\)`,
		`\(demo\)`, `\(demo[^)]*\)`,
		`\(extended\)`, `\(extended[^)]*\)`,
		`\(radio[^)]*\)`, `\(edit\)`, `\(version[^)]*\)`,
		`slowed`, `reverb`, `nightcore`,
		`8d audio`, `spatial audio`, `dolby atmos`,
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+pattern))
	}
	return compiled
}()

var (
	nonWordChars = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	whitespace   = regexp.MustCompile(`\s+`)

	parenthetical  = regexp.MustCompile(`\s*\(.*?\)\s*`)
	bracketed      = regexp.MustCompile(`\s*\[.*?\]\s*`)
	featuredSuffix = regexp.MustCompile(`(?i)\s*feat\..*`)
	jointSuffix    = regexp.MustCompile(`\s*&.*`)
)

// NormalizeTitle strips version qualifiers and punctuation and
// lowercases, leaving whitespace-separated tokens.
func NormalizeTitle(title string) string {
	cleaned := title
	for _, qualifier := range versionQualifiers {
		cleaned = qualifier.ReplaceAllString(cleaned, "")
	}
	cleaned = nonWordChars.ReplaceAllString(cleaned, " ")
	cleaned = whitespace.ReplaceAllString(cleaned, " ")
	return strings.ToLower(strings.TrimSpace(cleaned))
}

// NormalizeArtist strips parenthetical and bracketed asides
// and any featured/joint-credit suffix.
func NormalizeArtist(artist string) string {
	cleaned := parenthetical.ReplaceAllString(artist, " ")
	cleaned = bracketed.ReplaceAllString(cleaned, " ")
	cleaned = featuredSuffix.ReplaceAllString(cleaned, "")
	cleaned = jointSuffix.ReplaceAllString(cleaned, "")
	cleaned = whitespace.ReplaceAllString(cleaned, " ")
	return strings.ToLower(strings.TrimSpace(cleaned))
}

func tokens(data string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Fields(data) {
		set[token] = true
	}
	return set
}

func jaccard(first, second map[string]bool) float64 {
	if len(first) == 0 || len(second) == 0 {
		return 0
	}

	intersection := 0
	for token := range first {
		if second[token] {
			intersection++
		}
	}

	union := len(first) + len(second) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Title scores how close two track titles are, in [0, 1].
// Version qualifiers are ignored, exact normalized matches score 1,
// otherwise token overlap applies with a containment bonus.
func Title(target, candidate string) float64 {
	if target == "" || candidate == "" {
		return 0
	}

	targetClean, candidateClean := NormalizeTitle(target), NormalizeTitle(candidate)
	if targetClean == candidateClean {
		return 1
	}

	score := jaccard(tokens(targetClean), tokens(candidateClean))
	if targetClean != "" && candidateClean != "" &&
		(strings.Contains(candidateClean, targetClean) || strings.Contains(targetClean, candidateClean)) {
		score += 0.2
	}

	if score > 1 {
		return 1
	}
	return score
}

// Artist scores how close the target's primary artist is to any of the
// candidate's credited artists, in [0, 1]: 1 on exact match, 0.8 on
// containment either direction, token overlap otherwise.
func Artist(target string, candidates []string) float64 {
	if target == "" || len(candidates) == 0 {
		return 0
	}

	targetClean := NormalizeArtist(target)
	if targetClean == "" {
		return 0
	}

	best := 0.0
	for _, candidate := range candidates {
		candidateClean := NormalizeArtist(candidate)
		if candidateClean == "" {
			continue
		}

		score := 0.0
		switch {
		case targetClean == candidateClean:
			score = 1
		case strings.Contains(candidateClean, targetClean) || strings.Contains(targetClean, candidateClean):
			score = 0.8
		default:
			score = jaccard(tokens(targetClean), tokens(candidateClean))
		}

		if score > best {
			best = score
		}
	}
	return best
}

// Duration scores how close two durations (in seconds) are, as a step
// function over their absolute difference. Music videos routinely pad a
// handful of seconds of footage, hence the steep decay. A missing
// duration on either side is no signal at all, not a match.
func Duration(target, candidate float64) float64 {
	if target <= 0 || candidate <= 0 {
		return 0
	}

	difference := target - candidate
	if difference < 0 {
		difference = -difference
	}

	switch {
	case difference <= 1.0:
		return 1
	case difference <= 1.5:
		return 0.6
	case difference <= 2.0:
		return 0.3
	case difference <= 3.0:
		return 0.1
	default:
		return 0
	}
}

// String scores two generic strings, in [0, 1]: 1 on (case-insensitive)
// equality, 0.7 on containment, token overlap otherwise. Used for album
// name comparison.
func String(first, second string) float64 {
	if first == "" || second == "" {
		return 0
	}

	firstLower, secondLower := strings.ToLower(first), strings.ToLower(second)
	switch {
	case firstLower == secondLower:
		return 1
	case strings.Contains(firstLower, secondLower) || strings.Contains(secondLower, firstLower):
		return 0.7
	default:
		return jaccard(tokens(firstLower), tokens(secondLower))
	}
}
