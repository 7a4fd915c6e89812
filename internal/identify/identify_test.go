package identify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Wen-Qualtu/kt-datacards/internal/model"
	"github.com/Wen-Qualtu/kt-datacards/internal/team"
)

const testTable = `teams:
  battleclade:
    aliases: []
  angels-of-death:
    aliases:
      - "Angels of Death"
`

func loadResolver(t *testing.T) *team.Resolver {
	t.Helper()
	path := filepath.Join(t.TempDir(), "team-config.yaml")
	if err := os.WriteFile(path, []byte(testTable), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := team.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestFromFilename(t *testing.T) {
	r := loadResolver(t)

	cases := []struct {
		file     string
		wantTeam string
		wantType model.CardType
	}{
		{"battleclade-datacards.pdf", "battleclade", model.Datacards},
		{"battleclade-faction-rules.pdf", "battleclade", model.FactionRules},
		{"angels-of-death-strategy-ploys.pdf", "angels-of-death", model.StrategyPloys},
		{"angels-of-death-equipment.pdf", "angels-of-death", model.Equipment},
		{"Battleclade-Operatives.PDF", "battleclade", model.Operatives},
	}
	for _, tc := range cases {
		got, err := FromFilename(filepath.Join("input", tc.file), r)
		if err != nil {
			t.Errorf("FromFilename(%q): %v", tc.file, err)
			continue
		}
		if got.Team.Slug != tc.wantTeam || got.CardType != tc.wantType {
			t.Errorf("FromFilename(%q) = (%s, %s), want (%s, %s)",
				tc.file, got.Team.Slug, got.CardType, tc.wantTeam, tc.wantType)
		}
	}
}

func TestFromFilenameFailures(t *testing.T) {
	r := loadResolver(t)

	for _, file := range []string{
		"rules.pdf",                    // no card-type suffix
		"wolf-scouts-datacards.pdf",    // unknown team
		"battleclade.pdf",              // team only
	} {
		if _, err := FromFilename(file, r); err == nil {
			t.Errorf("FromFilename(%q) succeeded, want error", file)
		}
	}
}

func TestFromContent(t *testing.T) {
	r := loadResolver(t)

	runs := []model.TextRun{
		{Content: "BATTLECLADE", FontSize: 24, Y: 20},
		{Content: "FACTION EQUIPMENT", FontSize: 18, Y: 60},
		{Content: "rules body text", FontSize: 8, Y: 200},
	}
	rawText := "BATTLECLADE\nFACTION EQUIPMENT\nrules body text"

	got, err := FromContent("mystery.pdf", runs, rawText, r)
	if err != nil {
		t.Fatalf("FromContent: %v", err)
	}
	if got.Team.Slug != "battleclade" || got.CardType != model.Equipment {
		t.Errorf("FromContent = (%s, %s), want (battleclade, equipment)", got.Team.Slug, got.CardType)
	}
}

func TestFromContentDatacardStatLine(t *testing.T) {
	r := loadResolver(t)

	runs := []model.TextRun{
		{Content: "BATTLECLADE", FontSize: 20, Y: 10},
		{Content: "Servitor Warrior", FontSize: 14, Y: 40},
	}
	rawText := "BATTLECLADE\nServitor Warrior\nsome rules\nAPL 2 MOVE 6 SAVE 4+ WOUNDS 8"

	got, err := FromContent("scan001.pdf", runs, rawText, r)
	if err != nil {
		t.Fatalf("FromContent: %v", err)
	}
	if got.CardType != model.Datacards {
		t.Errorf("card type = %s, want datacards", got.CardType)
	}
}

func TestFromContentUnidentifiable(t *testing.T) {
	r := loadResolver(t)

	_, err := FromContent("blank.pdf", nil, "just some prose with nothing useful", r)
	if err == nil {
		t.Fatal("FromContent succeeded on unidentifiable input")
	}
	if _, ok := err.(*Error); !ok {
		t.Errorf("error type = %T, want *identify.Error", err)
	}
}
