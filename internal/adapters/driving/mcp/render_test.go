package mcp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
	"github.com/scoutlab/scholarscout-cli/internal/core/services"
)

func TestComma(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		7:       "7",
		999:     "999",
		1000:    "1,000",
		90000:   "90,000",
		1234567: "1,234,567",
		-1234:   "-1,234",
	}
	for n, want := range cases {
		assert.Equal(t, want, comma(n), "comma(%d)", n)
	}
}

func TestAuthorLine(t *testing.T) {
	refs := []domain.AuthorRef{
		{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"},
	}

	assert.Equal(t, "A, B, C +2 more", authorLine(refs, 3))
	assert.Equal(t, "A, B", authorLine(refs[:2], 3))
	assert.Equal(t, "A, B +3 more", authorLine(refs, 2))
	assert.Equal(t, "", authorLine(nil, 3))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactlyten", truncate("exactlyten", 10))
	assert.Equal(t, "longer tha...", truncate("longer than ten", 10))
}

func TestRenderPaperDetails_AbstractTruncation(t *testing.T) {
	long := strings.Repeat("a", 1500)
	text := renderPaperDetails(domain.PaperDetails{
		PaperRecord: domain.PaperRecord{Title: "T"},
		Abstract:    long,
	})

	assert.Contains(t, text, strings.Repeat("a", 1000)+"...")
	assert.NotContains(t, text, strings.Repeat("a", 1001))
}

func TestRenderPaperDetails_MissingAbstract(t *testing.T) {
	text := renderPaperDetails(domain.PaperDetails{
		PaperRecord: domain.PaperRecord{Title: "T"},
	})
	assert.Contains(t, text, "Abstract:\nNo abstract available")
}

func TestRenderAuthorDetails_TopPapers(t *testing.T) {
	profile := domain.AuthorProfile{
		ID:   "a1",
		Name: "Ada",
		Papers: []domain.AuthorPaper{
			{Title: "Minor", Year: 2019, CitationCount: 5},
			{Title: strings.Repeat("x", 70), Year: 2021, Venue: "NeurIPS", CitationCount: 900},
		},
	}

	text := renderAuthorDetails(profile)

	// Ordered by citations, titles cut at 60 chars.
	lines := strings.Split(text, "\n")
	var topIdx, minorIdx int
	for i, l := range lines {
		if strings.Contains(l, strings.Repeat("x", 60)+"...") {
			topIdx = i
		}
		if strings.Contains(l, "Minor") {
			minorIdx = i
		}
	}
	assert.NotZero(t, topIdx)
	assert.NotZero(t, minorIdx)
	assert.Less(t, topIdx, minorIdx)
}

func TestRenderRisingStars_TopPaperTitle(t *testing.T) {
	res := services.RisingStarsResult{
		Topic:        "llms",
		YearFrom:     2022,
		MinCitations: 50,
		MaxHIndex:    30,
		Stars: []services.RisingStar{{
			Profile:         domain.AuthorProfile{ID: "a1", Name: "Ada", HIndex: 4},
			RecentPapers:    []services.RecentPaper{{Title: strings.Repeat("y", 80), Citations: 120}},
			RecentCitations: 120,
			Score:           24,
		}},
	}

	text := renderRisingStars(res)
	assert.Contains(t, text, "Rising Stars in 'llms'")
	assert.Contains(t, text, "Max h-index: 30 (filtering out established researchers)")
	assert.Contains(t, text, "Top paper: "+strings.Repeat("y", 50)+"... (120 cites)")
}

func TestRenderVenueTopAuthors_UnresolvedProfile(t *testing.T) {
	res := services.VenueTopAuthorsResult{
		Venue:     "ICML",
		YearFrom:  2020,
		MinPapers: 2,
		Qualified: 1,
		Authors: []services.VenueAuthor{{
			Rollup: domain.AuthorRollup{ID: "a1", Name: "Ada", Papers: 3, Citations: 42},
		}},
	}

	text := renderVenueTopAuthors(res)
	assert.Contains(t, text, "h-index: ?")
	assert.Contains(t, text, "ICML: 3 papers (42 citations)")
	assert.Contains(t, text, "Active: N/A")
}

func TestRenderCodeSearch_BioTruncation(t *testing.T) {
	profiles := []domain.CodeHostProfile{{
		Login: "dev",
		Bio:   strings.Repeat("b", 150),
	}}

	text := renderCodeSearch("dev", profiles)
	assert.Contains(t, text, strings.Repeat("b", 100)+"...")
	assert.NotContains(t, text, strings.Repeat("b", 101))
	assert.Contains(t, text, "1. dev (@dev)")
}

func TestRenderActivityReport_ShortBioStillMarked(t *testing.T) {
	report := services.ActivityReport{
		Profile: domain.CodeHostProfile{Login: "dev", Bio: "short bio"},
	}

	text := renderActivityReport("dev", report)
	assert.Contains(t, text, "   Bio: short bio...")
}
