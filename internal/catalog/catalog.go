package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	MinRating = 1
	MaxRating = 10
)

var (
	ErrNoFeatures = errors.New("catalog has no features")
	ErrNoDevices  = errors.New("catalog has no devices")
)

// Feature is one rated attribute. Its position in Catalog.Features ties it
// to Device.Ratings and to importance weights.
type Feature struct {
	Key  string `json:"key" yaml:"key"`
	Name string `json:"name" yaml:"name"`
}

// Device is a named row of ratings, 1 = best-in-class, 10 = worst.
type Device struct {
	Name    string `json:"name"`
	Ratings []int  `json:"ratings"`
}

// Catalog is the immutable feature/device table the scorer ranks against.
type Catalog struct {
	Features []Feature `json:"features"`
	Devices  []Device  `json:"devices"`
}

// Keys returns the feature keys in order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.Features))
	for i, f := range c.Features {
		keys[i] = f.Key
	}
	return keys
}

// Lookup returns the device with the given name.
func (c *Catalog) Lookup(name string) (Device, bool) {
	for _, d := range c.Devices {
		if d.Name == name {
			return d, true
		}
	}
	return Device{}, false
}

// Validate checks the length and range invariants the scorer relies on.
func (c *Catalog) Validate() error {
	if len(c.Features) == 0 {
		return ErrNoFeatures
	}
	if len(c.Devices) == 0 {
		return ErrNoDevices
	}
	keys := make(map[string]bool, len(c.Features))
	for _, f := range c.Features {
		if f.Key == "" {
			return errors.New("feature key required")
		}
		if keys[f.Key] {
			return fmt.Errorf("duplicate feature key %q", f.Key)
		}
		keys[f.Key] = true
	}
	names := make(map[string]bool, len(c.Devices))
	for _, d := range c.Devices {
		if d.Name == "" {
			return errors.New("device name required")
		}
		if names[d.Name] {
			return fmt.Errorf("duplicate device %q", d.Name)
		}
		names[d.Name] = true
		if len(d.Ratings) != len(c.Features) {
			return fmt.Errorf("device %q has %d ratings, want %d", d.Name, len(d.Ratings), len(c.Features))
		}
		for i, r := range d.Ratings {
			if r < MinRating || r > MaxRating {
				return fmt.Errorf("device %q rating for %s is %d, must be %d-%d", d.Name, c.Features[i].Key, r, MinRating, MaxRating)
			}
		}
	}
	return nil
}

// ValidateWeights checks a caller-supplied importance vector against the catalog.
func (c *Catalog) ValidateWeights(weights []int) error {
	if len(weights) != len(c.Features) {
		return fmt.Errorf("got %d importance weights, want %d", len(weights), len(c.Features))
	}
	for i, w := range weights {
		if w < MinRating || w > MaxRating {
			return fmt.Errorf("importance for %s is %d, must be %d-%d", c.Features[i].Key, w, MinRating, MaxRating)
		}
	}
	return nil
}

// file mirrors the on-disk YAML layout, where ratings are keyed by feature.
type file struct {
	Features []Feature `yaml:"features"`
	Devices  []struct {
		Name    string         `yaml:"name"`
		Ratings map[string]int `yaml:"ratings"`
	} `yaml:"devices"`
}

// Load reads a catalog from a YAML file. Device order is preserved.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog and validates it.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{Features: f.Features}
	for _, d := range f.Devices {
		ratings := make([]int, len(f.Features))
		for i, feat := range f.Features {
			r, ok := d.Ratings[feat.Key]
			if !ok {
				return nil, fmt.Errorf("device %q missing rating for %s", d.Name, feat.Key)
			}
			ratings[i] = r
		}
		if len(d.Ratings) != len(f.Features) {
			for k := range d.Ratings {
				if !containsKey(f.Features, k) {
					return nil, fmt.Errorf("device %q has unknown feature %s", d.Name, k)
				}
			}
		}
		c.Devices = append(c.Devices, Device{Name: d.Name, Ratings: ratings})
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func containsKey(features []Feature, key string) bool {
	for _, f := range features {
		if f.Key == key {
			return true
		}
	}
	return false
}
