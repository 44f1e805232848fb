package domain

// RepoSummary is a compact view of one public repository.
type RepoSummary struct {
	Name        string
	Stars       int
	Forks       int
	Language    string
	Description string
}

// Event is a single recent public activity event.
type Event struct {
	Kind string // e.g. "PushEvent"
}

// CodeHostProfile is a developer profile fetched from the code host.
type CodeHostProfile struct {
	Login       string
	Name        string
	Bio         string
	Company     string
	Location    string
	Followers   int
	Following   int
	PublicRepos int
	ProfileURL  string
	Repos       []RepoSummary
	Events      []Event
}

// TotalStars sums star counts across the fetched repositories.
func (p CodeHostProfile) TotalStars() int {
	total := 0
	for _, r := range p.Repos {
		total += r.Stars
	}
	return total
}

// TotalForks sums fork counts across the fetched repositories.
func (p CodeHostProfile) TotalForks() int {
	total := 0
	for _, r := range p.Repos {
		total += r.Forks
	}
	return total
}

// PushEvents counts recent events of kind "PushEvent".
func (p CodeHostProfile) PushEvents() int {
	n := 0
	for _, e := range p.Events {
		if e.Kind == "PushEvent" {
			n++
		}
	}
	return n
}

// CodeHostStatus describes how the code-host side of a composite
// profile was resolved. The three absence modes are deliberately
// distinct so the renderer can word them differently.
type CodeHostStatus string

const (
	// CodeHostResolved means the profile was fetched.
	CodeHostResolved CodeHostStatus = "resolved"

	// CodeHostNoUsername means the caller supplied no username.
	CodeHostNoUsername CodeHostStatus = "no_username"

	// CodeHostNotConfigured means no code-host credential is set.
	CodeHostNotConfigured CodeHostStatus = "not_configured"

	// CodeHostNotFound means the username does not exist upstream.
	CodeHostNotFound CodeHostStatus = "not_found"
)

// AcademicTier buckets the academic-strength estimate.
type AcademicTier string

const (
	TierStrong      AcademicTier = "Strong"
	TierModerate    AcademicTier = "Moderate"
	TierEarlyCareer AcademicTier = "Early career"
)

// CompositeProfile pairs an optional academic profile with an optional
// code-host profile. Either side may be absent without failing the
// operation. AcademicScore is the min(100, h*3 + citations/100)
// estimate; it is reported alongside, and never reconciled with, the
// code-activity score.
type CompositeProfile struct {
	Name          string // the name the caller asked about
	Academic      *AuthorProfile
	Code          *CodeHostProfile
	CodeStatus    CodeHostStatus
	CodeUsername  string
	AcademicScore int
	AcademicTier  AcademicTier
}
