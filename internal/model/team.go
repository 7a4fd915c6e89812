package model

import "strings"

// Team is a faction with a canonical slug and the name variants seen in
// published PDFs. Loaded once from the alias table at startup; immutable
// for the run.
type Team struct {
	Slug    string
	Aliases []string
}

// NormalizeSlug converts a free-text name to canonical slug form:
// lowercase with hyphens.
func NormalizeSlug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	return s
}

// Matches reports whether text names this team, either by slug or alias.
func (t *Team) Matches(text string) bool {
	normalized := NormalizeSlug(text)
	if normalized == t.Slug {
		return true
	}
	for _, alias := range t.Aliases {
		if normalized == NormalizeSlug(alias) {
			return true
		}
	}
	return false
}

func (t *Team) String() string { return t.Slug }
