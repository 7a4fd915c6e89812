package metadata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Wen-Qualtu/kt-datacards/internal/model"
)

func TestBuildAndWrite(t *testing.T) {
	teamDir := filepath.Join(t.TempDir(), "battleclade")
	if err := os.MkdirAll(teamDir, 0o755); err != nil {
		t.Fatal(err)
	}

	team := &model.Team{Slug: "battleclade"}
	cards := []model.Card{
		{
			Team:       team,
			CardType:   model.StrategyPloys,
			Name:       "overclock",
			FrontImage: filepath.Join(teamDir, "strategy-ploys", "overclock_front.jpg"),
		},
		{
			Team:       team,
			CardType:   model.Datacards,
			Name:       "servitor-warrior",
			FrontImage: filepath.Join(teamDir, "datacards", "servitor-warrior_front.jpg"),
			BackImage:  filepath.Join(teamDir, "datacards", "servitor-warrior_back.jpg"),
		},
	}

	idx := Build("battleclade", cards, teamDir)
	if idx.Team != "battleclade" {
		t.Errorf("team = %q", idx.Team)
	}
	if len(idx.Cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(idx.Cards))
	}
	// Sorted by card type: datacards before strategy-ploys.
	if idx.Cards[0].Name != "servitor-warrior" {
		t.Errorf("first card = %q, want servitor-warrior", idx.Cards[0].Name)
	}
	if idx.Cards[0].Front != "datacards/servitor-warrior_front.jpg" {
		t.Errorf("front = %q", idx.Cards[0].Front)
	}
	if idx.Cards[0].Back != "datacards/servitor-warrior_back.jpg" {
		t.Errorf("back = %q", idx.Cards[0].Back)
	}
	if idx.Cards[1].Back != "" {
		t.Errorf("single-sided card has back %q", idx.Cards[1].Back)
	}

	path, err := Write(idx, teamDir)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Index
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("cards.json is not valid JSON: %v", err)
	}
	if decoded.Team != "battleclade" || len(decoded.Cards) != 2 {
		t.Errorf("round trip mismatch: %+v", decoded)
	}

	// back must be omitted, not null, for single-sided cards
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	entries := raw["cards"].([]any)
	single := entries[1].(map[string]any)
	if _, present := single["back"]; present {
		t.Error("single-sided entry serialized a back field")
	}
}
