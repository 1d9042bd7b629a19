package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	if len(c.Features) != 10 {
		t.Errorf("expected 10 features, got %d", len(c.Features))
	}
	if len(c.Devices) != 7 {
		t.Errorf("expected 7 devices, got %d", len(c.Devices))
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	a := Default()
	a.Devices[0].Ratings[0] = 9
	if b := Default(); b.Devices[0].Ratings[0] != 1 {
		t.Error("mutating one default catalog leaked into another")
	}
}

func TestLookup(t *testing.T) {
	c := Default()
	d, ok := c.Lookup("Apple TV")
	if !ok {
		t.Fatal("expected Apple TV")
	}
	if d.Ratings[2] != 10 {
		t.Errorf("expected passthrough rating 10, got %d", d.Ratings[2])
	}
	if _, ok := c.Lookup("Roku"); ok {
		t.Error("expected Roku to be missing")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cat  Catalog
		want string
	}{
		{"no features", Catalog{Devices: []Device{{Name: "a"}}}, "no features"},
		{"no devices", Catalog{Features: []Feature{{Key: "x"}}}, "no devices"},
		{
			"short ratings",
			Catalog{Features: []Feature{{Key: "x"}, {Key: "y"}}, Devices: []Device{{Name: "a", Ratings: []int{1}}}},
			"has 1 ratings, want 2",
		},
		{
			"rating out of range",
			Catalog{Features: []Feature{{Key: "x"}}, Devices: []Device{{Name: "a", Ratings: []int{11}}}},
			"must be 1-10",
		},
		{
			"duplicate device",
			Catalog{Features: []Feature{{Key: "x"}}, Devices: []Device{{Name: "a", Ratings: []int{1}}, {Name: "a", Ratings: []int{2}}}},
			"duplicate device",
		},
		{
			"duplicate feature",
			Catalog{Features: []Feature{{Key: "x"}, {Key: "x"}}, Devices: []Device{{Name: "a", Ratings: []int{1, 1}}}},
			"duplicate feature",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cat.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected %q in %q", tt.want, err.Error())
			}
		})
	}
}

func TestValidateWeights(t *testing.T) {
	c := Default()
	if err := c.ValidateWeights([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := c.ValidateWeights([]int{1, 2}); err == nil {
		t.Error("expected length error")
	}
	if err := c.ValidateWeights([]int{0, 5, 5, 5, 5, 5, 5, 5, 5, 5}); err == nil {
		t.Error("expected range error")
	}
}

const sampleYAML = `
features:
  - key: speed
    name: Speed
  - key: cost
    name: Cost
devices:
  - name: Zeta
    ratings: {speed: 3, cost: 9}
  - name: Alpha
    ratings: {cost: 1, speed: 7}
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := c.Keys(); len(got) != 2 || got[0] != "speed" || got[1] != "cost" {
		t.Errorf("unexpected keys %v", got)
	}
	if c.Devices[0].Name != "Zeta" || c.Devices[1].Name != "Alpha" {
		t.Errorf("device order not preserved: %+v", c.Devices)
	}
	if c.Devices[1].Ratings[0] != 7 || c.Devices[1].Ratings[1] != 1 {
		t.Errorf("ratings not mapped by feature key: %v", c.Devices[1].Ratings)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			"missing rating",
			"features: [{key: a}, {key: b}]\ndevices: [{name: x, ratings: {a: 1}}]",
			"missing rating for b",
		},
		{
			"unknown feature",
			"features: [{key: a}]\ndevices: [{name: x, ratings: {a: 1, z: 3}}]",
			"unknown feature z",
		},
		{
			"out of range",
			"features: [{key: a}]\ndevices: [{name: x, ratings: {a: 0}}]",
			"must be 1-10",
		},
		{
			"bad yaml",
			"features: [",
			"parse catalog",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected %q in %q", tt.want, err.Error())
			}
		})
	}
}
