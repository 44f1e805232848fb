package scholar

import "github.com/scoutlab/scholarscout-cli/internal/core/domain"

// Wire types for the Semantic Scholar Graph API. Numeric fields the
// upstream may omit or null are pointers; all defaulting happens in the
// mapping functions below so the rest of the system never sees a
// missing count.

type wirePaper struct {
	PaperID              string           `json:"paperId"`
	Title                string           `json:"title"`
	Year                 *int             `json:"year"`
	Venue                string           `json:"venue"`
	PublicationVenue     *wireVenue       `json:"publicationVenue"`
	Abstract             string           `json:"abstract"`
	CitationCount        *int             `json:"citationCount"`
	InfluentialCitations *int             `json:"influentialCitationCount"`
	ReferenceCount       *int             `json:"referenceCount"`
	Authors              []wireAuthorRef  `json:"authors"`
	ExternalIDs          *wireExternalIDs `json:"externalIds"`
	OpenAccessPdf        *wireOpenAccess  `json:"openAccessPdf"`
	PublicationDate      string           `json:"publicationDate"`
	TLDR                 *wireTLDR        `json:"tldr"`
	S2Fields             []wireStudyField `json:"s2FieldsOfStudy"`
}

type wireVenue struct {
	Name string `json:"name"`
}

type wireAuthorRef struct {
	AuthorID *string `json:"authorId"`
	Name     string  `json:"name"`
}

type wireExternalIDs struct {
	ArXiv string `json:"ArXiv"`
	DOI   string `json:"DOI"`
	ORCID string `json:"ORCID"`
	DBLP  string `json:"DBLP"`
}

type wireOpenAccess struct {
	URL string `json:"url"`
}

type wireTLDR struct {
	Text string `json:"text"`
}

type wireStudyField struct {
	Category string `json:"category"`
}

type wireAuthor struct {
	AuthorID      string           `json:"authorId"`
	Name          string           `json:"name"`
	Affiliations  []string         `json:"affiliations"`
	Homepage      string           `json:"homepage"`
	PaperCount    *int             `json:"paperCount"`
	CitationCount *int             `json:"citationCount"`
	HIndex        *int             `json:"hIndex"`
	ExternalIDs   *wireExternalIDs `json:"externalIds"`
	Papers        []wirePaper      `json:"papers"`
}

type wireSearchResponse struct {
	Total int         `json:"total"`
	Data  []wirePaper `json:"data"`
}

type wireAuthorSearchResponse struct {
	Total int          `json:"total"`
	Data  []wireAuthor `json:"data"`
}

type wireCitation struct {
	CitingPaper wirePaper `json:"citingPaper"`
}

type wireCitationsResponse struct {
	Data []wireCitation `json:"data"`
}

type wirePapersResponse struct {
	Data []wirePaper `json:"data"`
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func paperRecordFrom(w wirePaper) domain.PaperRecord {
	venue := w.Venue
	if venue == "" && w.PublicationVenue != nil {
		venue = w.PublicationVenue.Name
	}

	authors := make([]domain.AuthorRef, 0, len(w.Authors))
	for _, a := range w.Authors {
		ref := domain.AuthorRef{Name: a.Name}
		if a.AuthorID != nil {
			ref.ID = *a.AuthorID
		}
		authors = append(authors, ref)
	}

	record := domain.PaperRecord{
		ID:                   w.PaperID,
		Title:                w.Title,
		Year:                 intOrZero(w.Year),
		Venue:                venue,
		CitationCount:        intOrZero(w.CitationCount),
		InfluentialCitations: intOrZero(w.InfluentialCitations),
		Authors:              authors,
	}
	if w.ExternalIDs != nil {
		record.ArXivID = w.ExternalIDs.ArXiv
		record.DOI = w.ExternalIDs.DOI
	}
	return record
}

func paperDetailsFrom(w wirePaper) domain.PaperDetails {
	details := domain.PaperDetails{
		PaperRecord:     paperRecordFrom(w),
		Abstract:        w.Abstract,
		ReferenceCount:  intOrZero(w.ReferenceCount),
		PublicationDate: w.PublicationDate,
	}
	if w.TLDR != nil {
		details.TLDR = w.TLDR.Text
	}
	if w.OpenAccessPdf != nil {
		details.OpenAccessURL = w.OpenAccessPdf.URL
	}
	for _, f := range w.S2Fields {
		if f.Category != "" {
			details.FieldsOfStudy = append(details.FieldsOfStudy, f.Category)
		}
	}
	return details
}

func authorProfileFrom(w wireAuthor) domain.AuthorProfile {
	profile := domain.AuthorProfile{
		ID:           w.AuthorID,
		Name:         w.Name,
		Affiliations: w.Affiliations,
		Homepage:     w.Homepage,
		PaperCount:   intOrZero(w.PaperCount),
		Citations:    intOrZero(w.CitationCount),
		HIndex:       -1,
	}
	if w.HIndex != nil {
		profile.HIndex = *w.HIndex
	}
	if w.ExternalIDs != nil {
		profile.ORCID = w.ExternalIDs.ORCID
		profile.DBLP = w.ExternalIDs.DBLP
	}
	for _, p := range w.Papers {
		paper := domain.AuthorPaper{
			Title:                p.Title,
			Year:                 intOrZero(p.Year),
			Venue:                p.Venue,
			CitationCount:        intOrZero(p.CitationCount),
			InfluentialCitations: intOrZero(p.InfluentialCitations),
		}
		if p.ExternalIDs != nil {
			paper.ArXivID = p.ExternalIDs.ArXiv
		}
		profile.Papers = append(profile.Papers, paper)
	}
	return profile
}
