package domain

import "strings"

// venueAliases maps a lower-case venue shorthand to the ordered list of
// accepted full names. The first entry is the canonical upstream name
// used in search filters. The table is hand-maintained: adding a venue
// only extends the table.
var venueAliases = map[string][]string{
	"neurips": {"NeurIPS", "Neural Information Processing Systems", "NIPS"},
	"icml":    {"ICML", "International Conference on Machine Learning"},
	"iclr":    {"ICLR", "International Conference on Learning Representations"},
	"cvpr":    {"CVPR", "Computer Vision and Pattern Recognition"},
	"iccv":    {"ICCV", "International Conference on Computer Vision"},
	"eccv":    {"ECCV", "European Conference on Computer Vision"},
	"acl":     {"ACL", "Association for Computational Linguistics"},
	"emnlp":   {"EMNLP", "Empirical Methods in Natural Language Processing"},
	"naacl":   {"NAACL", "North American Chapter of the Association for Computational Linguistics"},
	"aaai":    {"AAAI", "Association for the Advancement of Artificial Intelligence"},
	"ijcai":   {"IJCAI", "International Joint Conference on Artificial Intelligence"},
	"kdd":     {"KDD", "SIGKDD", "Knowledge Discovery and Data Mining"},
	"icra":    {"ICRA", "International Conference on Robotics and Automation"},
	"corl":    {"CoRL", "Conference on Robot Learning"},
	"jmlr":    {"JMLR", "Journal of Machine Learning Research"},
	"tpami":   {"TPAMI", "IEEE Transactions on Pattern Analysis and Machine Intelligence"},
	"nature":  {"Nature", "Nature Machine Intelligence"},
	"science": {"Science"},
}

// ResolveVenue maps a case-insensitive shorthand to its canonical
// upstream venue name. Unknown venues pass through unchanged: the
// system trusts the caller rather than rejecting free-text names.
func ResolveVenue(venue string) string {
	if names, ok := venueAliases[strings.ToLower(venue)]; ok {
		return names[0]
	}
	return venue
}

// VenueCategory groups venue shorthands for display.
type VenueCategory struct {
	Name      string
	Shorthand []string
}

// VenueCategories returns the supported venue shorthands grouped by
// research area, in a fixed display order.
func VenueCategories() []VenueCategory {
	return []VenueCategory{
		{Name: "General ML", Shorthand: []string{"neurips", "icml", "iclr", "aaai", "ijcai", "jmlr"}},
		{Name: "Computer Vision", Shorthand: []string{"cvpr", "iccv", "eccv"}},
		{Name: "NLP", Shorthand: []string{"acl", "emnlp", "naacl"}},
		{Name: "Applied ML", Shorthand: []string{"kdd"}},
		{Name: "Robotics", Shorthand: []string{"icra", "corl"}},
		{Name: "High Impact Journals", Shorthand: []string{"nature", "science", "tpami"}},
	}
}
