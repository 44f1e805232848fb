package scholar

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
)

const (
	authorFields       = "authorId,name,affiliations,homepage,paperCount,citationCount,hIndex,externalIds"
	authorDetailFields = "authorId,externalIds,name,aliases,affiliations,homepage,paperCount," +
		"citationCount,hIndex,papers,papers.year,papers.title,papers.venue,papers.citationCount"
	authorPaperFields = "paperId,title,year,venue,citationCount,influentialCitationCount,externalIds"

	// maxBatchIDs is the upstream cap on the bulk author lookup.
	maxBatchIDs = 500
)

// SearchAuthors searches authors by name.
func (c *Client) SearchAuthors(ctx context.Context, query string, limit int) (domain.AuthorBatch, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("fields", authorFields)

	var resp wireAuthorSearchResponse
	if err := c.get(ctx, "/author/search", params, &resp); err != nil {
		return domain.AuthorBatch{}, err
	}

	batch := domain.AuthorBatch{Total: resp.Total}
	for _, w := range resp.Data {
		batch.Authors = append(batch.Authors, authorProfileFrom(w))
	}
	return batch, nil
}

// GetAuthor fetches one author profile including their papers.
func (c *Client) GetAuthor(ctx context.Context, id string) (domain.AuthorProfile, error) {
	params := url.Values{}
	params.Set("fields", authorDetailFields)

	var w wireAuthor
	if err := c.get(ctx, "/author/"+url.PathEscape(id), params, &w); err != nil {
		return domain.AuthorProfile{}, err
	}
	return authorProfileFrom(w), nil
}

// GetAuthorPapers lists an author's papers. The endpoint has no
// server-side sort; ordering is the caller's concern.
func (c *Client) GetAuthorPapers(ctx context.Context, id string, limit int) ([]domain.PaperRecord, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	params := url.Values{}
	params.Set("fields", authorPaperFields)
	params.Set("limit", strconv.Itoa(limit))

	var resp wirePapersResponse
	if err := c.get(ctx, "/author/"+url.PathEscape(id)+"/papers", params, &resp); err != nil {
		return nil, err
	}

	papers := make([]domain.PaperRecord, 0, len(resp.Data))
	for _, w := range resp.Data {
		papers = append(papers, paperRecordFrom(w))
	}
	return papers, nil
}

// BatchAuthors performs one bulk lookup for up to 500 author ids.
// The upstream returns a positional array with null entries for ids it
// cannot resolve; those are simply absent from the returned map. An
// empty id list returns an empty map without any network call.
func (c *Client) BatchAuthors(ctx context.Context, ids []string) (map[string]domain.AuthorProfile, error) {
	profiles := make(map[string]domain.AuthorProfile)
	if len(ids) == 0 {
		return profiles, nil
	}
	if len(ids) > maxBatchIDs {
		return nil, fmt.Errorf("scholar: batch of %d ids exceeds the %d id cap: %w",
			len(ids), maxBatchIDs, domain.ErrInvalidInput)
	}

	params := url.Values{}
	params.Set("fields", authorFields)

	body := struct {
		IDs []string `json:"ids"`
	}{IDs: ids}

	var resp []*wireAuthor
	if err := c.post(ctx, "/author/batch", params, body, &resp); err != nil {
		return nil, err
	}

	for _, w := range resp {
		if w == nil || w.AuthorID == "" {
			continue
		}
		profiles[w.AuthorID] = authorProfileFrom(*w)
	}
	return profiles, nil
}
