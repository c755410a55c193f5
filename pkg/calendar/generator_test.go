package calendar

import (
	"reflect"
	"strings"
	"testing"

	"krishi/entities"
)

func TestGenerate_DripIrrigationReplacesCategory(t *testing.T) {
	base := DefaultCatalog()
	p := entities.FarmerProfile{IrrigationType: "Drip Irrigation", CropsGrowing: []string{"Wheat", "Rice"}}

	out := Generate(base, p)
	got := out[entities.CategoryIrrigation]

	if reflect.DeepEqual(got, base[entities.CategoryIrrigation]) {
		t.Fatal("irrigation category must be replaced for a known type")
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 drip events, got %d", len(got))
	}
	for _, ev := range got {
		if !strings.Contains(ev.Name, "Drip") {
			t.Errorf("non-drip event in tailored list: %q", ev.Name)
		}
		if ev.Category != entities.CategoryIrrigation {
			t.Errorf("event %q missing category", ev.Name)
		}
	}
	if !strings.Contains(got[0].Notes, "Wheat, Rice") {
		t.Errorf("setup notes should name the crops: %q", got[0].Notes)
	}
}

func TestGenerate_UnknownIrrigationTypeKeepsBase(t *testing.T) {
	base := DefaultCatalog()
	out := Generate(base, entities.FarmerProfile{IrrigationType: "Unknown Type"})
	if !reflect.DeepEqual(out[entities.CategoryIrrigation], base[entities.CategoryIrrigation]) {
		t.Fatal("unknown irrigation type must leave the generic list")
	}
}

func TestGenerate_SoilTypeReplacesSoilCategory(t *testing.T) {
	base := DefaultCatalog()
	out := Generate(base, entities.FarmerProfile{SoilType: "Black"})
	got := out[entities.CategorySoil]
	if len(got) != 3 {
		t.Fatalf("expected 3 soil events, got %d", len(got))
	}
	if got[0].Name != "Black Soil - Health Testing" {
		t.Fatalf("soil event name: %q", got[0].Name)
	}
}

func TestGenerate_PlantingMapsKnownCropsOnly(t *testing.T) {
	base := DefaultCatalog()
	out := Generate(base, entities.FarmerProfile{CropsGrowing: []string{"Wheat", "Dragonfruit", "Cotton"}})
	got := out[entities.CategoryPlanting]
	if len(got) != 2 {
		t.Fatalf("expected 2 planting events (unmapped crop skipped), got %d", len(got))
	}
	if got[0].Name != "Wheat Sowing/Planting" || got[0].Date != "2025-10-15" {
		t.Fatalf("wheat planting: %+v", got[0])
	}
	if got[1].Variety != "Bt Cotton, Desi Cotton" {
		t.Fatalf("cotton variety: %q", got[1].Variety)
	}
}

func TestGenerate_NoMappedCropsFallsBackToBase(t *testing.T) {
	base := DefaultCatalog()
	out := Generate(base, entities.FarmerProfile{CropsGrowing: []string{"Dragonfruit"}})
	if !reflect.DeepEqual(out[entities.CategoryPlanting], base[entities.CategoryPlanting]) {
		t.Fatal("zero mapped crops must keep the generic planting list")
	}
	if len(out[entities.CategoryPlanting]) == 0 {
		t.Fatal("planting category must never come back empty")
	}
}

func TestGenerate_AllCategoriesAlwaysPresent(t *testing.T) {
	base := DefaultCatalog()
	out := Generate(base, entities.FarmerProfile{IrrigationType: "Flood Irrigation", SoilType: "Clay", CropsGrowing: []string{"Rice"}})
	for _, cat := range entities.Categories {
		if len(out[cat]) == 0 {
			t.Errorf("category %s missing or empty after personalization", cat)
		}
	}
}

func TestGenerate_DoesNotMutateBase(t *testing.T) {
	base := DefaultCatalog()
	want := DefaultCatalog()
	Generate(base, entities.FarmerProfile{IrrigationType: "Drip Irrigation", SoilType: "Loamy", CropsGrowing: []string{"Rice"}})
	if !reflect.DeepEqual(base, want) {
		t.Fatal("generate mutated the base catalog")
	}
}
