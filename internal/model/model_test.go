package model

import "testing"

func TestParseCardType(t *testing.T) {
	cases := []struct {
		in   string
		want CardType
	}{
		{"datacards", Datacards},
		{"datacard", Datacards},
		{"Strategy Ploy", StrategyPloys},
		{"strategy-ploys", StrategyPloys},
		{"firefight_ploy", FirefightPloys},
		{"faction rules", FactionRules},
		{"faction-rule", FactionRules},
		{"operative", Operatives},
		{"EQUIPMENT", Equipment},
	}
	for _, tc := range cases {
		got, err := ParseCardType(tc.in)
		if err != nil {
			t.Errorf("ParseCardType(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCardType(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseCardType("token-meshes"); err == nil {
		t.Error("ParseCardType accepted an unknown type")
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Noospheric Network", "noospheric-network"},
		{"GENE-WROUGHT MIGHT", "gene-wrought-might"},
		{"  Wolf   Scouts  ", "wolf-scouts"},
		{"A/B test!", "ab-test"},
		{"under_score", "under-score"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTeamMatches(t *testing.T) {
	team := &Team{Slug: "hearthkyn-salvagers", Aliases: []string{"Hearthkyn Salvager"}}

	for _, in := range []string{"hearthkyn-salvagers", "Hearthkyn Salvagers", "hearthkyn salvager"} {
		if !team.Matches(in) {
			t.Errorf("Matches(%q) = false, want true", in)
		}
	}
	if team.Matches("void-dancer-troupe") {
		t.Error("Matches accepted an unrelated team")
	}
}
