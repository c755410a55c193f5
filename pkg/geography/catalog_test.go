package geography

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_BuiltInTable(t *testing.T) {
	c := Load("")
	states := c.States()
	if len(states) != 29 {
		t.Fatalf("expected 29 states, got %d", len(states))
	}
	d := c.Districts("Telangana")
	if len(d) == 0 {
		t.Fatal("expected districts for Telangana")
	}
}

func TestDistricts_UnknownStateIsEmptyNotNil(t *testing.T) {
	c := Load("")
	d := c.Districts("Atlantis")
	if d == nil {
		t.Fatal("unknown state must return empty slice, not nil")
	}
	if len(d) != 0 {
		t.Fatalf("unknown state must have no districts, got %v", d)
	}
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	c := Load("/no/such/geography.json")
	if len(c.States()) != 29 {
		t.Fatal("missing file must fall back to the built-in table")
	}
}

func TestLoad_BadFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geography.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := Load(path)
	if len(c.States()) != 29 {
		t.Fatal("unparseable file must fall back to the built-in table")
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geography.json")
	body := `{"states":["Punjab","Haryana"],"stateDistricts":{"Punjab":["Ludhiana"]}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	c := Load(path)
	if got := c.States(); len(got) != 2 || got[0] != "Haryana" {
		t.Fatalf("override states: %v", got)
	}
	if d := c.Districts("Punjab"); len(d) != 1 || d[0] != "Ludhiana" {
		t.Fatalf("override districts: %v", d)
	}
}

func TestAccessors_ReturnCopies(t *testing.T) {
	c := Load("")
	c.States()[0] = "mutated"
	if c.States()[0] == "mutated" {
		t.Fatal("States must return a copy")
	}
	c.Districts("Punjab")[0] = "mutated"
	if c.Districts("Punjab")[0] == "mutated" {
		t.Fatal("Districts must return a copy")
	}
}
