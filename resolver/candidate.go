package resolver

// Source tags which kind of search produced a candidate.
type Source int

const (
	SourceFreeText Source = iota
	SourceIdentifier
)

// Candidate is a single search result from the download platform,
// evaluated as a possible stand-in for a target track. Candidates are
// ephemeral: built per search call, dropped once resolution completes.
type Candidate struct {
	ID       string   // platform video identifier, required
	Title    string   // required
	Artists  []string // credited names, in order
	Album    string
	Duration float64 // in seconds, 0 when unknown
	ISRC     string
	Source   Source
	Extra    map[string]string // raw platform metadata, kept to re-derive fields after a detail fetch
}

// Valid reports whether the candidate carries
// enough data to be worth scoring.
func (candidate Candidate) Valid() bool {
	return candidate.ID != "" && candidate.Title != ""
}

// Dedupe drops invalid entries and collapses candidates sharing an
// identifier, preserving order. An identifier-search entry is never
// overwritten by a free-text one for the same identifier.
func Dedupe(candidates []Candidate) []Candidate {
	var (
		deduped = make([]Candidate, 0, len(candidates))
		seen    = make(map[string]int, len(candidates))
	)
	for _, candidate := range candidates {
		if !candidate.Valid() {
			continue
		}

		if position, ok := seen[candidate.ID]; ok {
			if deduped[position].Source != SourceIdentifier {
				deduped[position] = candidate
			}
			continue
		}

		seen[candidate.ID] = len(deduped)
		deduped = append(deduped, candidate)
	}
	return deduped
}
