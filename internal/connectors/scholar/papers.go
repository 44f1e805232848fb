package scholar

import (
	"context"
	"net/url"
	"strconv"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
	"github.com/scoutlab/scholarscout-cli/internal/core/ports/driven"
)

// Ensure Client implements the port.
var _ driven.AcademicGraph = (*Client)(nil)

// Field lists requested per endpoint. Narrower lists keep the upstream
// responses small; these match what the mapping layer consumes.
const (
	searchPaperFields = "paperId,title,year,venue,publicationVenue,authors,citationCount," +
		"influentialCitationCount,abstract,externalIds,openAccessPdf,publicationDate"
	paperDetailFields = "paperId,corpusId,title,year,venue,publicationVenue,authors,abstract," +
		"citationCount,influentialCitationCount,referenceCount,externalIds,openAccessPdf," +
		"publicationDate,tldr,fieldsOfStudy,s2FieldsOfStudy"
	citationFields = "paperId,title,year,venue,authors,citationCount"
)

// SearchPapers issues one filtered bulk search. The bulk endpoint is
// used because it supports server-side sorting.
func (c *Client) SearchPapers(ctx context.Context, q domain.PaperQuery) (domain.PaperBatch, error) {
	limit := q.Limit
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	params := url.Values{}
	params.Set("query", q.Query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("fields", searchPaperFields)

	if q.Venue != "" {
		params.Set("venue", q.Venue)
	}
	if yr := q.YearRange(); yr != "" {
		params.Set("year", yr)
	}
	if q.MinCitations > 0 {
		params.Set("minCitationCount", strconv.Itoa(q.MinCitations))
	}
	if q.FieldsOfStudy != "" {
		params.Set("fieldsOfStudy", q.FieldsOfStudy)
	}
	if q.OpenAccessOnly {
		params.Set("openAccessPdf", "")
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}

	var resp wireSearchResponse
	if err := c.get(ctx, "/paper/search/bulk", params, &resp); err != nil {
		return domain.PaperBatch{}, err
	}

	batch := domain.PaperBatch{Total: resp.Total}
	for _, w := range resp.Data {
		batch.Papers = append(batch.Papers, paperRecordFrom(w))
	}
	return batch, nil
}

// GetPaper fetches one paper with its detail fields. The id may be a
// native paper id, "DOI:..." or "ARXIV:...".
func (c *Client) GetPaper(ctx context.Context, id string) (domain.PaperDetails, error) {
	params := url.Values{}
	params.Set("fields", paperDetailFields)

	var w wirePaper
	if err := c.get(ctx, "/paper/"+url.PathEscape(id), params, &w); err != nil {
		return domain.PaperDetails{}, err
	}
	return paperDetailsFrom(w), nil
}

// GetPaperCitations lists papers citing the given paper.
func (c *Client) GetPaperCitations(ctx context.Context, id string, limit int) ([]domain.PaperRecord, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	params := url.Values{}
	params.Set("fields", citationFields)
	params.Set("limit", strconv.Itoa(limit))

	var resp wireCitationsResponse
	if err := c.get(ctx, "/paper/"+url.PathEscape(id)+"/citations", params, &resp); err != nil {
		return nil, err
	}

	papers := make([]domain.PaperRecord, 0, len(resp.Data))
	for _, cite := range resp.Data {
		papers = append(papers, paperRecordFrom(cite.CitingPaper))
	}
	return papers, nil
}
