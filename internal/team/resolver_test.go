package team

import (
	"os"
	"path/filepath"
	"testing"
)

const testTable = `teams:
  angels-of-death:
    aliases:
      - "Angels of Death"
  battleclade:
    aliases: []
  hearthkyn-salvagers:
    aliases:
      - "Hearthkyn Salvager"
`

func loadTestResolver(t *testing.T) *Resolver {
	t.Helper()
	path := filepath.Join(t.TempDir(), "team-config.yaml")
	if err := os.WriteFile(path, []byte(testTable), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return r
}

func TestResolve(t *testing.T) {
	r := loadTestResolver(t)

	cases := []struct {
		in   string
		want string
	}{
		{"angels-of-death", "angels-of-death"},
		{"Angels of Death", "angels-of-death"},
		{"ANGELS OF DEATH", "angels-of-death"},
		{"battleclade", "battleclade"},
		{"battleclades", "battleclade"}, // trailing plural
		{"hearthkyn salvagers", "hearthkyn-salvagers"},
		{"Hearthkyn Salvager", "hearthkyn-salvagers"}, // alias, singular
	}
	for _, tc := range cases {
		got := r.Resolve(tc.in)
		if got == nil {
			t.Errorf("Resolve(%q) = nil, want %q", tc.in, tc.want)
			continue
		}
		if got.Slug != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.in, got.Slug, tc.want)
		}
	}
}

func TestResolveUnknownTeam(t *testing.T) {
	r := loadTestResolver(t)

	for _, in := range []string{"void-dancer-troupe", ""} {
		if got := r.Resolve(in); got != nil {
			t.Errorf("Resolve(%q) = %q, want nil", in, got.Slug)
		}
	}
}

func TestTeamsSorted(t *testing.T) {
	r := loadTestResolver(t)

	teams := r.Teams()
	if len(teams) != 3 {
		t.Fatalf("Teams() = %d entries, want 3", len(teams))
	}
	for i := 1; i < len(teams); i++ {
		if teams[i-1].Slug >= teams[i].Slug {
			t.Errorf("Teams() not sorted: %q before %q", teams[i-1].Slug, teams[i].Slug)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}
