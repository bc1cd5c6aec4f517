// Package dataset loads the YAML fixtures the demo queries run against.
package dataset

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/kbukum/querykit/validation"
)

// Pet is an animal owned by an Owner.
type Pet struct {
	Name    string `yaml:"name" mapstructure:"name" validate:"required"`
	Species string `yaml:"species" mapstructure:"species" validate:"required"`
	Age     int    `yaml:"age" mapstructure:"age" validate:"gte=0"`
}

// Owner is a person with zero or more pets.
type Owner struct {
	Name string `yaml:"name" mapstructure:"name" validate:"required"`
	Age  int    `yaml:"age" mapstructure:"age" validate:"gte=0"`
	Pets []Pet  `yaml:"pets" mapstructure:"pets" validate:"dive"`
}

// Reading is one sensor sample. Value is left as decoded so numeric and
// non-numeric samples can both be represented.
type Reading struct {
	Sensor string `yaml:"sensor" mapstructure:"sensor" validate:"required"`
	Value  any    `yaml:"value" mapstructure:"value"`
}

// Sets holds two integer lists for set algebra.
type Sets struct {
	Left  []int `yaml:"left" mapstructure:"left"`
	Right []int `yaml:"right" mapstructure:"right"`
}

// Dataset is the root of a fixture file.
type Dataset struct {
	Owners   []Owner   `yaml:"owners" mapstructure:"owners" validate:"dive"`
	Readings []Reading `yaml:"readings" mapstructure:"readings" validate:"dive"`
	Sets     Sets      `yaml:"sets" mapstructure:"sets"`
}

// Load reads and validates the dataset at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: reading %s: %w", path, err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes and validates a dataset from YAML.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	if err := validation.Validate(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// ReadingValues returns the raw value of every reading in file order.
func (d *Dataset) ReadingValues() []any {
	values := make([]any, len(d.Readings))
	for i, r := range d.Readings {
		values[i] = r.Value
	}
	return values
}
