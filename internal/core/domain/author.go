package domain

// AuthorRollup is the per-author summary accumulated while folding a
// paper batch. It is keyed by the author identifier; authors without an
// identifier are never rolled up. Counts only grow during the fold and
// the rollup is read-only once the batch is processed.
type AuthorRollup struct {
	ID        string
	Name      string // first-seen display name
	Papers    int    // distinct qualifying papers
	Citations int    // citation sum across qualifying papers
	Years     []int  // publication years seen, unknown years omitted
}

// ActiveRange returns the min and max publication year seen.
// ok is false when no paper in the batch carried a year.
func (r AuthorRollup) ActiveRange() (min, max int, ok bool) {
	if len(r.Years) == 0 {
		return 0, 0, false
	}
	min, max = r.Years[0], r.Years[0]
	for _, y := range r.Years[1:] {
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	return min, max, true
}

// AuthorPaper is a compact paper entry attached to an author profile.
type AuthorPaper struct {
	Title                string
	Year                 int
	Venue                string
	CitationCount        int
	InfluentialCitations int
	ArXivID              string
}

// AuthorProfile is the enriched, career-level view of one author
// identifier. HIndex is -1 when the upstream did not report one.
type AuthorProfile struct {
	ID           string
	Name         string
	Affiliations []string // first entry is the primary affiliation
	Homepage     string
	ORCID        string
	DBLP         string
	PaperCount   int
	Citations    int
	HIndex       int
	Papers       []AuthorPaper // only populated by single-author lookups
}

// PrimaryAffiliation returns the first affiliation or fallback when the
// author has none.
func (p AuthorProfile) PrimaryAffiliation(fallback string) string {
	if len(p.Affiliations) > 0 {
		return p.Affiliations[0]
	}
	return fallback
}

// HIndexOrZero treats an unknown h-index as zero for scoring purposes.
func (p AuthorProfile) HIndexOrZero() int {
	if p.HIndex < 0 {
		return 0
	}
	return p.HIndex
}

// AuthorBatch is the result of an author name search.
type AuthorBatch struct {
	Authors []AuthorProfile
	Total   int
}
