package services

import (
	"sort"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
)

// RollupAccumulator folds paper batches into per-author rollups. The
// fold is pure bookkeeping: no upstream calls, no mutation of the input
// batch. Authors without an identifier cannot be keyed and are skipped;
// the first-seen display name wins for authors appearing under several
// spellings.
type RollupAccumulator struct {
	byID  map[string]*domain.AuthorRollup
	order []string // first-occurrence order, the tiebreak for ranking
}

// NewRollupAccumulator creates an empty accumulator.
func NewRollupAccumulator() *RollupAccumulator {
	return &RollupAccumulator{byID: make(map[string]*domain.AuthorRollup)}
}

// Fold accumulates a single paper into the rollups: each identified
// author gains one paper, the paper's citations, and its publication
// year when known.
func (a *RollupAccumulator) Fold(p domain.PaperRecord) {
	for _, ref := range p.Authors {
		if ref.ID == "" {
			continue
		}
		r, ok := a.byID[ref.ID]
		if !ok {
			r = &domain.AuthorRollup{ID: ref.ID, Name: ref.Name}
			a.byID[ref.ID] = r
			a.order = append(a.order, ref.ID)
		}
		r.Papers++
		r.Citations += p.CitationCount
		if p.Year != 0 {
			r.Years = append(r.Years, p.Year)
		}
	}
}

// FoldAll accumulates every paper in the batch.
func (a *RollupAccumulator) FoldAll(papers []domain.PaperRecord) {
	for _, p := range papers {
		a.Fold(p)
	}
}

// Len reports how many distinct identified authors have been folded.
func (a *RollupAccumulator) Len() int {
	return len(a.byID)
}

// Qualified returns the rollups with at least minPapers papers, ranked
// by paper count then citation sum, both descending. Authors tied on
// both keep their first-occurrence order.
func (a *RollupAccumulator) Qualified(minPapers int) []domain.AuthorRollup {
	out := make([]domain.AuthorRollup, 0, len(a.order))
	for _, id := range a.order {
		if r := a.byID[id]; r.Papers >= minPapers {
			out = append(out, *r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Papers != out[j].Papers {
			return out[i].Papers > out[j].Papers
		}
		return out[i].Citations > out[j].Citations
	})
	return out
}
