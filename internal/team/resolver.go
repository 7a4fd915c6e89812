// Package team resolves free-text faction names against the YAML alias
// table. Resolution is case-insensitive, hyphen/space-insensitive and
// tolerant of a trailing plural "s". An unresolvable name is a hard
// identification failure for the whole document; the resolver itself
// only reports the miss.
package team

import (
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/Wen-Qualtu/kt-datacards/internal/model"
)

type teamEntry struct {
	Aliases []string `yaml:"aliases"`
}

type aliasFile struct {
	Teams map[string]teamEntry `yaml:"teams"`
}

// Resolver maps free-text team names to canonical teams.
type Resolver struct {
	teams map[string]*model.Team
}

// Load reads the alias table at path and builds a Resolver.
func Load(path string) (*Resolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read team config: %w", err)
	}

	var file aliasFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse team config %s: %w", path, err)
	}

	r := &Resolver{teams: make(map[string]*model.Team, len(file.Teams))}
	for name, entry := range file.Teams {
		slug := model.NormalizeSlug(name)
		r.teams[slug] = &model.Team{Slug: slug, Aliases: entry.Aliases}
	}

	log.Info().Int("teams", len(r.teams)).Str("file", path).Msg("loaded team alias table")
	return r, nil
}

// Resolve returns the team matching text, or nil when no team matches.
func (r *Resolver) Resolve(text string) *model.Team {
	if text == "" {
		return nil
	}
	normalized := model.NormalizeSlug(text)

	if t, ok := r.teams[normalized]; ok {
		return t
	}
	// Trailing plural tolerance both ways
	if t, ok := r.teams[normalized+"s"]; ok {
		return t
	}
	if trimmed := trimPlural(normalized); trimmed != normalized {
		if t, ok := r.teams[trimmed]; ok {
			return t
		}
	}
	for _, t := range r.teams {
		if t.Matches(text) {
			return t
		}
	}

	log.Warn().Str("name", text).Str("normalized", normalized).Msg("team not found in alias table")
	return nil
}

// Teams returns all loaded teams sorted by slug.
func (r *Resolver) Teams() []*model.Team {
	out := make([]*model.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// Len returns the number of loaded teams.
func (r *Resolver) Len() int { return len(r.teams) }

func trimPlural(s string) string {
	if len(s) > 1 && s[len(s)-1] == 's' {
		return s[:len(s)-1]
	}
	return s
}
