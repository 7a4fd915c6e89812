package group

import (
	"testing"

	"github.com/Wen-Qualtu/kt-datacards/internal/classify"
	"github.com/Wen-Qualtu/kt-datacards/internal/model"
)

// fakeSource feeds pre-classified pages to the grouper.
type fakeSource struct {
	texts []string
	pages []model.ClassifiedPage
	errs  []error
}

func (f *fakeSource) NumPages() int { return len(f.pages) }

func (f *fakeSource) RawText(i int) (string, error) { return f.texts[i], nil }

func (f *fakeSource) Classify(i int) (model.ClassifiedPage, error) {
	if f.errs[i] != nil {
		return model.ClassifiedPage{}, f.errs[i]
	}
	return f.pages[i], nil
}

func newFakeSource(cardType model.CardType, names ...string) *fakeSource {
	f := &fakeSource{}
	for i, name := range names {
		f.texts = append(f.texts, "")
		if name == "" {
			f.errs = append(f.errs, &classify.Error{PageIndex: i, CardType: cardType.String()})
			f.pages = append(f.pages, model.ClassifiedPage{})
			continue
		}
		f.errs = append(f.errs, nil)
		f.pages = append(f.pages, model.ClassifiedPage{PageIndex: i, CardType: cardType, CardName: name})
	}
	return f
}

func TestGroupDatacardPairs(t *testing.T) {
	src := newFakeSource(model.Datacards, "sergeant", "sergeant", "gunner")

	fronts, err := Group(src, model.Datacards)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fronts) != 2 {
		t.Fatalf("fronts = %d, want 2", len(fronts))
	}
	if fronts[0].CardName != "sergeant" || !fronts[0].HasBack {
		t.Errorf("first card = %+v, want sergeant with back", fronts[0])
	}
	if fronts[1].CardName != "gunner" || fronts[1].HasBack {
		t.Errorf("second card = %+v, want single-sided gunner", fronts[1])
	}
	if fronts[1].PageIndex != 2 {
		t.Errorf("second card page = %d, want 2", fronts[1].PageIndex)
	}
}

func TestGroupDatacardTripleSameName(t *testing.T) {
	// Three consecutive pages with the same name: pages 1+2 pair up,
	// page 3 starts a new card rather than continuing the first.
	src := newFakeSource(model.Datacards, "sergeant", "sergeant", "sergeant")

	fronts, err := Group(src, model.Datacards)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fronts) != 2 {
		t.Fatalf("fronts = %d, want 2", len(fronts))
	}
	if !fronts[0].HasBack {
		t.Error("first pair lost its back")
	}
	if fronts[1].PageIndex != 2 || fronts[1].HasBack {
		t.Errorf("third page = %+v, want unpaired front at page index 2", fronts[1])
	}
}

func TestGroupContinuationMarker(t *testing.T) {
	src := newFakeSource(model.Equipment, "frag-grenades", "climbing-gear")
	src.texts[0] = "equipment rules... CONTINUES ON OTHER SIDE"

	fronts, err := Group(src, model.Equipment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fronts) != 1 {
		t.Fatalf("fronts = %d, want 1", len(fronts))
	}
	if fronts[0].CardName != "frag-grenades" || !fronts[0].HasBack {
		t.Errorf("card = %+v, want frag-grenades with back", fronts[0])
	}
}

func TestGroupFactionRulesScenario(t *testing.T) {
	// Page 1 names a rule, page 2 is an unnamed continuation, page 3 is
	// the marker/token guide.
	src := newFakeSource(model.FactionRules, "noospheric-network", "", classify.MarkerGuideName)

	fronts, err := Group(src, model.FactionRules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fronts) != 2 {
		t.Fatalf("fronts = %d, want 2", len(fronts))
	}
	if fronts[0].CardName != "noospheric-network" || !fronts[0].HasBack {
		t.Errorf("first card = %+v, want noospheric-network with back", fronts[0])
	}
	if fronts[1].CardName != classify.MarkerGuideName || fronts[1].HasBack {
		t.Errorf("second card = %+v, want unpaired marker guide", fronts[1])
	}
}

func TestGroupFactionRulesNamedFollowedByNamed(t *testing.T) {
	src := newFakeSource(model.FactionRules, "first-rule", "second-rule")

	fronts, err := Group(src, model.FactionRules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fronts) != 2 {
		t.Fatalf("fronts = %d, want 2 single-sided rules", len(fronts))
	}
	for _, f := range fronts {
		if f.HasBack {
			t.Errorf("card %q unexpectedly paired", f.CardName)
		}
	}
}

func TestGroupOperativeNumbering(t *testing.T) {
	src := newFakeSource(model.Operatives,
		classify.OperativesName, classify.OperativesName, classify.OperativesName)

	fronts, err := Group(src, model.Operatives)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"operatives", "operatives-2", "operatives-3"}
	if len(fronts) != len(want) {
		t.Fatalf("fronts = %d, want %d", len(fronts), len(want))
	}
	for i, name := range want {
		if fronts[i].CardName != name {
			t.Errorf("card %d = %q, want %q", i, fronts[i].CardName, name)
		}
	}
}

func TestGroupSingleOperativeKeepsPlainName(t *testing.T) {
	src := newFakeSource(model.Operatives, classify.OperativesName)

	fronts, err := Group(src, model.Operatives)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fronts) != 1 || fronts[0].CardName != classify.OperativesName {
		t.Fatalf("fronts = %+v, want one plain operatives card", fronts)
	}
}

func TestGroupFrontClassificationFailureAborts(t *testing.T) {
	src := newFakeSource(model.Datacards, "", "gunner")

	if _, err := Group(src, model.Datacards); err == nil {
		t.Fatal("want error for unnamed required front, got nil")
	}
}
