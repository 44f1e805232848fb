package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
)

// paper builds a minimal record for fold tests.
func paper(id string, year, citations int, authors ...domain.AuthorRef) domain.PaperRecord {
	return domain.PaperRecord{
		ID:            id,
		Title:         "paper " + id,
		Year:          year,
		CitationCount: citations,
		Authors:       authors,
	}
}

func TestRollupAccumulator_Fold(t *testing.T) {
	t.Run("sums papers, citations and years per author", func(t *testing.T) {
		acc := NewRollupAccumulator()
		acc.FoldAll([]domain.PaperRecord{
			paper("p1", 2021, 100, domain.AuthorRef{ID: "a1", Name: "Ada"}),
			paper("p2", 2023, 40, domain.AuthorRef{ID: "a1", Name: "Ada"}),
		})

		require.Equal(t, 1, acc.Len())
		rollups := acc.Qualified(1)
		require.Len(t, rollups, 1)
		assert.Equal(t, 2, rollups[0].Papers)
		assert.Equal(t, 140, rollups[0].Citations)
		assert.Equal(t, []int{2021, 2023}, rollups[0].Years)
	})

	t.Run("first-seen name wins", func(t *testing.T) {
		acc := NewRollupAccumulator()
		acc.FoldAll([]domain.PaperRecord{
			paper("p1", 2021, 1, domain.AuthorRef{ID: "a1", Name: "A. Lovelace"}),
			paper("p2", 2022, 1, domain.AuthorRef{ID: "a1", Name: "Ada Lovelace"}),
		})

		rollups := acc.Qualified(1)
		require.Len(t, rollups, 1)
		assert.Equal(t, "A. Lovelace", rollups[0].Name)
	})

	t.Run("authors without an id never appear", func(t *testing.T) {
		acc := NewRollupAccumulator()
		acc.FoldAll([]domain.PaperRecord{
			paper("p1", 2021, 50,
				domain.AuthorRef{ID: "", Name: "Anonymous"},
				domain.AuthorRef{ID: "a1", Name: "Ada"},
			),
			paper("p2", 2022, 10, domain.AuthorRef{ID: "", Name: "Anonymous"}),
		})

		assert.Equal(t, 1, acc.Len())
		rollups := acc.Qualified(1)
		require.Len(t, rollups, 1)
		assert.Equal(t, "a1", rollups[0].ID)
	})

	t.Run("unknown year is omitted from the range", func(t *testing.T) {
		acc := NewRollupAccumulator()
		acc.FoldAll([]domain.PaperRecord{
			paper("p1", 0, 5, domain.AuthorRef{ID: "a1", Name: "Ada"}),
			paper("p2", 2020, 5, domain.AuthorRef{ID: "a1", Name: "Ada"}),
		})

		rollups := acc.Qualified(1)
		require.Len(t, rollups, 1)
		assert.Equal(t, []int{2020}, rollups[0].Years)
	})
}

func TestRollupAccumulator_Qualified(t *testing.T) {
	t.Run("filters by minimum papers", func(t *testing.T) {
		acc := NewRollupAccumulator()
		acc.FoldAll([]domain.PaperRecord{
			paper("p1", 2021, 10, domain.AuthorRef{ID: "a1", Name: "Ada"}),
			paper("p2", 2022, 10, domain.AuthorRef{ID: "a1", Name: "Ada"}),
			paper("p3", 2023, 99, domain.AuthorRef{ID: "a2", Name: "Grace"}),
		})

		rollups := acc.Qualified(2)
		require.Len(t, rollups, 1)
		assert.Equal(t, "a1", rollups[0].ID)
		assert.Equal(t, 2, acc.Len())
	})

	t.Run("ranks by papers then citations descending", func(t *testing.T) {
		acc := NewRollupAccumulator()
		acc.FoldAll([]domain.PaperRecord{
			paper("p1", 2021, 5, domain.AuthorRef{ID: "few", Name: "Few"}),
			paper("p2", 2021, 1, domain.AuthorRef{ID: "many", Name: "Many"}),
			paper("p3", 2022, 1, domain.AuthorRef{ID: "many", Name: "Many"}),
			paper("p4", 2021, 9, domain.AuthorRef{ID: "rich", Name: "Rich"}),
			paper("p5", 2022, 9, domain.AuthorRef{ID: "rich", Name: "Rich"}),
		})

		rollups := acc.Qualified(1)
		require.Len(t, rollups, 3)
		assert.Equal(t, "rich", rollups[0].ID) // 2 papers, 18 citations
		assert.Equal(t, "many", rollups[1].ID) // 2 papers, 2 citations
		assert.Equal(t, "few", rollups[2].ID)  // 1 paper, 5 citations
	})

	t.Run("full ties keep first-occurrence order", func(t *testing.T) {
		acc := NewRollupAccumulator()
		acc.FoldAll([]domain.PaperRecord{
			paper("p1", 2021, 30, domain.AuthorRef{ID: "first", Name: "First"}),
			paper("p2", 2021, 30, domain.AuthorRef{ID: "second", Name: "Second"}),
			paper("p3", 2021, 30, domain.AuthorRef{ID: "third", Name: "Third"}),
		})

		rollups := acc.Qualified(1)
		require.Len(t, rollups, 3)
		assert.Equal(t, "first", rollups[0].ID)
		assert.Equal(t, "second", rollups[1].ID)
		assert.Equal(t, "third", rollups[2].ID)
	})

	t.Run("empty accumulator yields no rollups", func(t *testing.T) {
		acc := NewRollupAccumulator()
		assert.Equal(t, 0, acc.Len())
		assert.Empty(t, acc.Qualified(1))
	})
}
