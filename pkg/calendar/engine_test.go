package calendar

import (
	"testing"

	"krishi/entities"
	"krishi/pkg/store"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultCatalog(), store.NewMemory())
}

func TestEventsOn_ExactDateOnly(t *testing.T) {
	e := newTestEngine()
	got := e.EventsOn("2025-06-01")

	if len(got) == 0 {
		t.Fatal("expected events on 2025-06-01")
	}
	for _, ev := range got {
		if ev.Date != "2025-06-01" {
			t.Errorf("event %q has date %s", ev.Name, ev.Date)
		}
	}
	// Kharif runs 2025-06-01..2025-10-31 but only its start date matches.
	mid := e.EventsOn("2025-08-20")
	for _, ev := range mid {
		if ev.Name == "Kharif Season Start (Monsoon Crops)" {
			t.Error("a season must not match dates inside its range")
		}
	}
}

func TestEventsOn_TolleratesDatetimeSuffix(t *testing.T) {
	cats := map[entities.Category][]entities.CalendarEvent{
		entities.CategoryScheme: {{Name: "X", Date: "2025-03-01T00:00:00", Category: entities.CategoryScheme}},
	}
	e := NewEngine(cats, store.NewMemory())
	if got := e.EventsOn("2025-03-01"); len(got) != 1 {
		t.Fatalf("datetime-form date should match its day, got %v", got)
	}
}

func TestEventsMatching_Category(t *testing.T) {
	e := newTestEngine()
	got := e.EventsMatching(entities.CategoryHarvest)
	if len(got) != 4 {
		t.Fatalf("expected 4 harvest events, got %d", len(got))
	}
	for _, ev := range got {
		if ev.Category != entities.CategoryHarvest {
			t.Errorf("wrong category on %q", ev.Name)
		}
	}
}

func TestKeyFor_StableAcrossRegeneration(t *testing.T) {
	st := store.NewMemory()
	e1 := NewEngine(DefaultCatalog(), st)
	ev1 := e1.EventsMatching(entities.CategoryPlanting)[0]

	note := "check seed stock"
	if _, err := e1.SetAnnotation(ev1, AnnotationPatch{Note: &note}); err != nil {
		t.Fatal(err)
	}

	// regenerate: a second engine over a fresh catalog and the same store
	e2 := NewEngine(DefaultCatalog(), st)
	ev2 := e2.EventsMatching(entities.CategoryPlanting)[0]
	if KeyFor(ev1) != KeyFor(ev2) {
		t.Fatalf("keys differ across regeneration: %q vs %q", KeyFor(ev1), KeyFor(ev2))
	}
	a, err := e2.AnnotationFor(ev2)
	if err != nil {
		t.Fatal(err)
	}
	if a.Note != note {
		t.Fatalf("annotation lost across regeneration: %q", a.Note)
	}
}

func TestSetAnnotation_PatchesSingleKey(t *testing.T) {
	e := newTestEngine()
	events := e.EventsMatching(entities.CategoryScheme)
	a, b := events[0], events[1]

	noteA := "apply before deadline"
	if _, err := e.SetAnnotation(a, AnnotationPatch{Note: &noteA}); err != nil {
		t.Fatal(err)
	}
	if _, err := e.ToggleReminder(b); err != nil {
		t.Fatal(err)
	}

	gotA, _ := e.AnnotationFor(a)
	gotB, _ := e.AnnotationFor(b)
	if gotA.Note != noteA || gotA.ReminderSet {
		t.Fatalf("annotation A: %+v", gotA)
	}
	if gotB.Note != "" || !gotB.ReminderSet {
		t.Fatalf("annotation B: %+v", gotB)
	}
}

func TestSetAnnotation_PartialPatchKeepsOtherFields(t *testing.T) {
	e := newTestEngine()
	ev := e.EventsMatching(entities.CategorySoil)[0]

	note := "lab booked"
	if _, err := e.SetAnnotation(ev, AnnotationPatch{Note: &note}); err != nil {
		t.Fatal(err)
	}
	on, err := e.ToggleHighlight(ev)
	if err != nil || !on {
		t.Fatalf("toggle highlight: %v %v", on, err)
	}
	got, _ := e.AnnotationFor(ev)
	if got.Note != note || !got.Highlighted {
		t.Fatalf("patch clobbered fields: %+v", got)
	}
}

func TestToggleReminder_FlipsBothWays(t *testing.T) {
	e := newTestEngine()
	ev := e.EventsMatching(entities.CategoryPestDisease)[0]
	if on, _ := e.ToggleReminder(ev); !on {
		t.Fatal("first toggle should set the reminder")
	}
	if on, _ := e.ToggleReminder(ev); on {
		t.Fatal("second toggle should clear it")
	}
}

func TestFindByKey(t *testing.T) {
	e := newTestEngine()
	ev := e.EventsMatching(entities.CategoryHarvest)[0]
	got, ok := e.FindByKey(KeyFor(ev))
	if !ok || got.Name != ev.Name {
		t.Fatalf("find by key: %v %v", got, ok)
	}
	if _, ok := e.FindByKey("2099-01-01-Nothing"); ok {
		t.Fatal("unknown key must not resolve")
	}
}
