package mcp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
	"github.com/scoutlab/scholarscout-cli/internal/core/services"
)

// Rendering limits. These truncation points are part of the output
// contract; clients diff tool output across runs.
const (
	maxListAuthors    = 3
	maxCiteAuthors    = 2
	maxDetailAuthors  = 10
	maxAbstractChars  = 1000
	maxTopPaperTitle  = 60
	maxStarPaperTitle = 50
	maxBioChars       = 100
	maxRepoDescChars  = 50
	maxTopPapers      = 5
	maxFieldsShown    = 5
)

// comma formats an integer with thousands separators.
func comma(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// yearOrNA renders a publication year, 0 meaning unknown.
func yearOrNA(year int) string {
	if year == 0 {
		return "N/A"
	}
	return strconv.Itoa(year)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// clip cuts s at n and always marks the cut, even when nothing was
// removed. Bios render this way regardless of length.
func clip(s string, n int) string {
	if len(s) > n {
		s = s[:n]
	}
	return s + "..."
}

// authorLine joins the first few author names, noting how many were cut.
func authorLine(authors []domain.AuthorRef, show int) string {
	names := make([]string, 0, show)
	for i, a := range authors {
		if i == show {
			break
		}
		names = append(names, a.Name)
	}
	line := strings.Join(names, ", ")
	if extra := len(authors) - show; extra > 0 {
		line += fmt.Sprintf(" +%d more", extra)
	}
	return line
}

func renderPaperList(query, venue string, batch domain.PaperBatch) string {
	if len(batch.Papers) == 0 {
		return "No papers found for query: " + query
	}

	var out []string
	out = append(out, fmt.Sprintf("Found %s papers (showing top %d)\n", comma(batch.Total), len(batch.Papers)))
	out = append(out, fmt.Sprintf("   Query: '%s'", query))
	if venue != "" {
		out = append(out, "   Venue: "+venue)
	}
	out = append(out, "")

	for i, p := range batch.Papers {
		out = append(out, fmt.Sprintf("%d. %s", i+1, p.Title))
		out = append(out, "   "+authorLine(p.Authors, maxListAuthors))
		out = append(out, fmt.Sprintf("   %s | %s", yearOrNA(p.Year), orNA(p.Venue)))
		out = append(out, fmt.Sprintf("   Citations: %s (%d influential)", comma(p.CitationCount), p.InfluentialCitations))
		if p.ArXivID != "" {
			out = append(out, "   arXiv: https://arxiv.org/abs/"+p.ArXivID)
		}
		if p.DOI != "" {
			out = append(out, "   DOI: https://doi.org/"+p.DOI)
		}
		out = append(out, "   S2: "+p.ID)
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

func renderPaperDetails(d domain.PaperDetails) string {
	var out []string
	out = append(out, d.Title+"\n")
	out = append(out, "Year: "+yearOrNA(d.Year))
	out = append(out, "Venue: "+orNA(d.Venue))
	out = append(out, fmt.Sprintf("Citations: %s (%d influential) | References: %d",
		comma(d.CitationCount), d.InfluentialCitations, d.ReferenceCount))

	if d.ArXivID != "" {
		out = append(out, "arXiv: https://arxiv.org/abs/"+d.ArXivID)
	}
	if d.DOI != "" {
		out = append(out, "DOI: https://doi.org/"+d.DOI)
	}
	if d.OpenAccessURL != "" {
		out = append(out, "PDF: "+d.OpenAccessURL)
	}

	out = append(out, fmt.Sprintf("\nAuthors (%d):", len(d.Authors)))
	for i, a := range d.Authors {
		if i == maxDetailAuthors {
			break
		}
		out = append(out, fmt.Sprintf("   - %s [ID: %s]", a.Name, a.ID))
	}
	if extra := len(d.Authors) - maxDetailAuthors; extra > 0 {
		out = append(out, fmt.Sprintf("   ... and %d more", extra))
	}

	if len(d.FieldsOfStudy) > 0 {
		fields := d.FieldsOfStudy
		if len(fields) > maxFieldsShown {
			fields = fields[:maxFieldsShown]
		}
		out = append(out, "\nFields: "+strings.Join(fields, ", "))
	}

	if d.TLDR != "" {
		out = append(out, "\nTL;DR: "+d.TLDR)
	}

	abstract := d.Abstract
	if abstract == "" {
		abstract = "No abstract available"
	}
	out = append(out, "\nAbstract:\n"+truncate(abstract, maxAbstractChars))

	return strings.Join(out, "\n")
}

func renderPaperCitations(papers []domain.PaperRecord) string {
	if len(papers) == 0 {
		return "No citations found for this paper."
	}

	var out []string
	out = append(out, fmt.Sprintf("Citations (%d shown)\n", len(papers)))
	for i, p := range papers {
		out = append(out, fmt.Sprintf("%d. %s", i+1, p.Title))
		out = append(out, fmt.Sprintf("   %s | %s | %s", authorLine(p.Authors, maxCiteAuthors), yearOrNA(p.Year), p.Venue))
		out = append(out, fmt.Sprintf("   %s citations", comma(p.CitationCount)))
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

func renderAuthorSearch(name string, batch domain.AuthorBatch) string {
	if len(batch.Authors) == 0 {
		return "No authors found matching: " + name
	}

	var out []string
	out = append(out, fmt.Sprintf("Found %s authors matching '%s' (showing %d)\n", comma(batch.Total), name, len(batch.Authors)))
	for i, a := range batch.Authors {
		out = append(out, fmt.Sprintf("%d. %s [ID: %s]", i+1, a.Name, a.ID))
		out = append(out, "   "+a.PrimaryAffiliation("No affiliation"))
		out = append(out, fmt.Sprintf("   h-index: %d | Papers: %s | Citations: %s",
			a.HIndexOrZero(), comma(a.PaperCount), comma(a.Citations)))
		if a.Homepage != "" {
			out = append(out, "   "+a.Homepage)
		}
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

func renderAuthorDetails(p domain.AuthorProfile) string {
	var out []string
	out = append(out, p.Name+"\n")
	out = append(out, "Semantic Scholar ID: "+p.ID)

	if p.ORCID != "" {
		out = append(out, "ORCID: https://orcid.org/"+p.ORCID)
	}
	if p.DBLP != "" {
		out = append(out, "DBLP: "+p.DBLP)
	}
	if len(p.Affiliations) > 0 {
		out = append(out, "Affiliations: "+strings.Join(p.Affiliations, ", "))
	}
	if p.Homepage != "" {
		out = append(out, "Homepage: "+p.Homepage)
	}

	out = append(out, "\nMetrics:")
	out = append(out, fmt.Sprintf("   h-index: %d", p.HIndexOrZero()))
	out = append(out, "   Total papers: "+comma(p.PaperCount))
	out = append(out, "   Total citations: "+comma(p.Citations))

	if len(p.Papers) > 0 {
		sorted := make([]domain.AuthorPaper, len(p.Papers))
		copy(sorted, p.Papers)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CitationCount > sorted[j].CitationCount
		})
		if len(sorted) > maxTopPapers {
			sorted = sorted[:maxTopPapers]
		}

		out = append(out, "\nTop Papers (by citations):")
		for _, paper := range sorted {
			out = append(out, fmt.Sprintf("   - [%s] %s", yearOrNA(paper.Year), truncate(paper.Title, maxTopPaperTitle)))
			out = append(out, fmt.Sprintf("     %s | %s citations", paper.Venue, comma(paper.CitationCount)))
		}
	}
	return strings.Join(out, "\n")
}

func renderAuthorPapers(authorID string, papers []domain.PaperRecord) string {
	if len(papers) == 0 {
		return "No papers found for this author."
	}

	var out []string
	out = append(out, fmt.Sprintf("Papers by author %s (%d found)\n", authorID, len(papers)))
	for i, p := range papers {
		out = append(out, fmt.Sprintf("%d. %s", i+1, p.Title))
		out = append(out, fmt.Sprintf("   %s | %s", yearOrNA(p.Year), p.Venue))
		out = append(out, fmt.Sprintf("   Citations: %s (%d influential)", comma(p.CitationCount), p.InfluentialCitations))
		if p.ArXivID != "" {
			out = append(out, "   arXiv: "+p.ArXivID)
		}
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

func renderVenueTopAuthors(res services.VenueTopAuthorsResult) string {
	if len(res.Authors) == 0 {
		return fmt.Sprintf("No papers found at %s since %d", res.Venue, res.YearFrom)
	}

	var out []string
	out = append(out, fmt.Sprintf("Top Authors at %s (since %d)\n", res.Venue, res.YearFrom))
	if res.Topic != "" {
		out = append(out, fmt.Sprintf("   Topic filter: '%s'", res.Topic))
	}
	out = append(out, fmt.Sprintf("   Found %d authors with %d+ papers\n", res.Qualified, res.MinPapers))

	for i, a := range res.Authors {
		r := a.Rollup
		out = append(out, fmt.Sprintf("%d. %s [ID: %s]", i+1, r.Name, r.ID))

		// The bulk lookup may not have resolved every id.
		if a.Profile != nil {
			out = append(out, "   "+a.Profile.PrimaryAffiliation("Unknown"))
			out = append(out, fmt.Sprintf("   h-index: %d | Total citations: %s",
				a.Profile.HIndexOrZero(), comma(a.Profile.Citations)))
		} else {
			out = append(out, "   Unknown")
			out = append(out, "   h-index: ?")
		}

		out = append(out, fmt.Sprintf("   %s: %d papers (%s citations)", res.Venue, r.Papers, comma(r.Citations)))
		if min, max, ok := r.ActiveRange(); ok {
			out = append(out, fmt.Sprintf("   Active: %d-%d", min, max))
		} else {
			out = append(out, "   Active: N/A")
		}
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

func renderRisingStars(res services.RisingStarsResult) string {
	if len(res.Stars) == 0 {
		return fmt.Sprintf("No highly-cited papers found for '%s' since %d", res.Topic, res.YearFrom)
	}

	var out []string
	out = append(out, fmt.Sprintf("Rising Stars in '%s'\n", res.Topic))
	out = append(out, fmt.Sprintf("   Criteria: Papers since %d with %d+ citations", res.YearFrom, res.MinCitations))
	out = append(out, fmt.Sprintf("   Max h-index: %d (filtering out established researchers)\n", res.MaxHIndex))

	for i, star := range res.Stars {
		p := star.Profile
		out = append(out, fmt.Sprintf("%d. %s [ID: %s]", i+1, p.Name, p.ID))
		out = append(out, "   "+p.PrimaryAffiliation("Unknown"))
		out = append(out, fmt.Sprintf("   h-index: %d | Total citations: %s", p.HIndexOrZero(), comma(p.Citations)))
		out = append(out, fmt.Sprintf("   Recent impact: %s citations from %d papers",
			comma(star.RecentCitations), len(star.RecentPapers)))
		if p.Homepage != "" {
			out = append(out, "   "+p.Homepage)
		}
		if top, ok := star.TopPaper(); ok {
			title := top.Title
			if len(title) > maxStarPaperTitle {
				title = title[:maxStarPaperTitle]
			}
			out = append(out, fmt.Sprintf("   Top paper: %s... (%d cites)", title, top.Citations))
		}
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

func renderCodeSearch(name string, profiles []domain.CodeHostProfile) string {
	if len(profiles) == 0 {
		return "No GitHub users found matching: " + name
	}

	var out []string
	out = append(out, fmt.Sprintf("GitHub profiles matching '%s':\n", name))
	for i, p := range profiles {
		displayName := p.Name
		if displayName == "" {
			displayName = p.Login
		}
		out = append(out, fmt.Sprintf("%d. %s (@%s)", i+1, displayName, p.Login))
		if p.ProfileURL != "" {
			out = append(out, "   "+p.ProfileURL)
		}
		if p.Company != "" {
			out = append(out, "   "+p.Company)
		}
		if p.Location != "" {
			out = append(out, "   "+p.Location)
		}
		if p.Bio != "" {
			out = append(out, "   "+clip(p.Bio, maxBioChars))
		}
		out = append(out, fmt.Sprintf("   %d repos | %s followers", p.PublicRepos, comma(p.Followers)))
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

func renderActivityReport(username string, r services.ActivityReport) string {
	p := r.Profile
	displayName := p.Name
	if displayName == "" {
		displayName = username
	}

	var out []string
	out = append(out, fmt.Sprintf("GitHub Analysis: %s (@%s)\n", displayName, username))
	out = append(out, fmt.Sprintf("Recruitability Score: %d/100", r.Score))
	out = append(out, "   "+r.Band+"\n")

	out = append(out, "Profile Stats:")
	out = append(out, fmt.Sprintf("   Followers: %s | Following: %s", comma(p.Followers), comma(p.Following)))
	out = append(out, fmt.Sprintf("   Public repos: %d", p.PublicRepos))
	out = append(out, fmt.Sprintf("   Total stars: %s | Forks: %s", comma(r.Metrics.TotalStars), comma(p.TotalForks())))
	if p.Company != "" {
		out = append(out, "   Company: "+p.Company)
	}
	if p.Bio != "" {
		out = append(out, "   Bio: "+clip(p.Bio, maxBioChars))
	}

	if len(r.Languages) > 0 {
		langs := make([]string, len(r.Languages))
		for i, l := range r.Languages {
			langs[i] = fmt.Sprintf("%s (%d)", l.Language, l.Repos)
		}
		out = append(out, "\nTop Languages: "+strings.Join(langs, ", "))
	}

	out = append(out, "\nRecent Activity (last 100 events):")
	out = append(out, fmt.Sprintf("   Total events: %d", r.Metrics.RecentEvents))
	out = append(out, fmt.Sprintf("   Push events: %d", r.Metrics.PushEvents))

	if len(r.TopRepos) > 0 {
		out = append(out, "\nTop Repositories:")
		for _, repo := range r.TopRepos {
			line := fmt.Sprintf("   - %s (%s stars)", repo.Name, comma(repo.Stars))
			if repo.Description != "" {
				desc := repo.Description
				if len(desc) > maxRepoDescChars {
					desc = desc[:maxRepoDescChars]
				}
				line += " - " + desc
			}
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func renderCompositeProfile(c domain.CompositeProfile) string {
	var out []string
	out = append(out, "Combined Profile: "+c.Name+"\n")
	out = append(out, strings.Repeat("=", 50))

	if c.Academic != nil {
		a := c.Academic
		out = append(out, "\nACADEMIC PROFILE (Semantic Scholar)")
		out = append(out, strings.Repeat("-", 40))
		out = append(out, a.Name)
		if len(a.Affiliations) > 0 {
			out = append(out, strings.Join(a.Affiliations, ", "))
		}
		out = append(out, fmt.Sprintf("h-index: %d | Citations: %s | Papers: %s",
			a.HIndexOrZero(), comma(a.Citations), comma(a.PaperCount)))
		if a.Homepage != "" {
			out = append(out, a.Homepage)
		}
		if a.ORCID != "" {
			out = append(out, "ORCID: https://orcid.org/"+a.ORCID)
		}
	} else {
		out = append(out, "\nACADEMIC PROFILE: Not found on Semantic Scholar")
	}

	switch c.CodeStatus {
	case domain.CodeHostResolved:
		g := c.Code
		displayName := g.Name
		if displayName == "" {
			displayName = g.Login
		}
		out = append(out, "\nGITHUB PROFILE")
		out = append(out, strings.Repeat("-", 40))
		out = append(out, fmt.Sprintf("%s (@%s)", displayName, g.Login))
		if g.Company != "" {
			out = append(out, g.Company)
		}
		if g.Bio != "" {
			out = append(out, g.Bio)
		}
		out = append(out, fmt.Sprintf("Repos: %d | Followers: %s", g.PublicRepos, comma(g.Followers)))
		out = append(out, "https://github.com/"+g.Login)
	case domain.CodeHostNotFound:
		out = append(out, fmt.Sprintf("\nGITHUB PROFILE: User '%s' not found", c.CodeUsername))
	case domain.CodeHostNotConfigured:
		out = append(out, "\nGITHUB PROFILE: Token not configured")
	default:
		out = append(out, "\nGITHUB PROFILE: No username provided")
	}

	out = append(out, "\n"+strings.Repeat("=", 50))
	out = append(out, "RECRUITMENT ASSESSMENT")
	out = append(out, fmt.Sprintf("   Academic: %s (estimated %d/100)", c.AcademicTier, c.AcademicScore))

	return strings.Join(out, "\n")
}

func renderVenueList() string {
	var out []string
	out = append(out, "Supported ML Venue Shortcuts\n")
	out = append(out, "Use these shortcuts in venue filters:")

	for _, cat := range domain.VenueCategories() {
		out = append(out, "\n"+cat.Name+":")
		for _, short := range cat.Shorthand {
			out = append(out, fmt.Sprintf("   '%s' -> %s", short, domain.ResolveVenue(short)))
		}
	}
	return strings.Join(out, "\n")
}

func renderBatchLookup(profiles []*domain.AuthorProfile) string {
	var out []string
	out = append(out, fmt.Sprintf("Batch Author Lookup (%d results)\n", len(profiles)))

	for i, p := range profiles {
		if p == nil {
			out = append(out, fmt.Sprintf("%d. Not found", i+1))
			continue
		}
		out = append(out, fmt.Sprintf("%d. %s [ID: %s]", i+1, p.Name, p.ID))
		if len(p.Affiliations) > 0 {
			out = append(out, "   "+p.Affiliations[0])
		}
		out = append(out, fmt.Sprintf("   h-index: %d | Citations: %s | Papers: %s",
			p.HIndexOrZero(), comma(p.Citations), comma(p.PaperCount)))
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}
