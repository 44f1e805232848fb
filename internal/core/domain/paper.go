package domain

import "strconv"

// AuthorRef is a lightweight author reference carried on a paper.
// It is not an entity on its own: ID is the join key into AuthorRollup
// and may be empty when the upstream could not resolve the author.
type AuthorRef struct {
	ID   string
	Name string
}

// PaperRecord is a single paper fetched from the academic graph.
// Records are immutable once fetched and live for one request.
type PaperRecord struct {
	ID                   string
	Title                string
	Year                 int // 0 = unknown
	Venue                string
	CitationCount        int
	InfluentialCitations int
	Authors              []AuthorRef
	ArXivID              string
	DOI                  string
}

// PaperDetails extends PaperRecord with the fields only fetched for a
// single-paper lookup.
type PaperDetails struct {
	PaperRecord
	Abstract        string
	TLDR            string
	ReferenceCount  int
	FieldsOfStudy   []string
	OpenAccessURL   string
	PublicationDate string
}

// PaperBatch is the result of one paginated paper query. Total reports
// the upstream match count and may exceed len(Papers); callers must not
// assume the batch is exhaustive.
type PaperBatch struct {
	Papers []PaperRecord
	Total  int
}

// PaperQuery holds the filter parameters for a paper search.
// Venue should already be resolved via ResolveVenue. A zero YearFrom or
// YearTo means the bound is unset.
type PaperQuery struct {
	Query          string
	Venue          string
	YearFrom       int
	YearTo         int
	MinCitations   int
	FieldsOfStudy  string // comma-separated, passed through
	OpenAccessOnly bool
	Limit          int // clamped to [1,100] by the connector
	Sort           string
}

// YearRange returns the year filter expression for the query:
// "from-to", "from-", "-to", or "" when neither bound is set.
func (q PaperQuery) YearRange() string {
	return YearRangeExpr(q.YearFrom, q.YearTo)
}

// YearRangeExpr builds the upstream year-range expression from optional
// bounds (0 = unset).
func YearRangeExpr(from, to int) string {
	switch {
	case from != 0 && to != 0:
		return strconv.Itoa(from) + "-" + strconv.Itoa(to)
	case from != 0:
		return strconv.Itoa(from) + "-"
	case to != 0:
		return "-" + strconv.Itoa(to)
	default:
		return ""
	}
}
