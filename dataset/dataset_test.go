package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/querykit/errors"
)

const fixture = `
owners:
  - name: Kathy
    age: 42
    pets:
      - {name: Barley, species: dog, age: 8}
      - {name: Whiskers, species: cat, age: 1}
  - name: Johnny
    age: 30
    pets: []
readings:
  - {sensor: a, value: 12}
  - {sensor: b, value: 7.5}
  - {sensor: c, value: "n/a"}
sets:
  left: [1, 2, 3]
  right: [3, 4]
`

func TestParse(t *testing.T) {
	ds, err := Parse([]byte(fixture))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ds.Owners) != 2 || len(ds.Owners[0].Pets) != 2 {
		t.Fatalf("unexpected owners %+v", ds.Owners)
	}
	if ds.Owners[0].Pets[1].Species != "cat" {
		t.Errorf("unexpected pet %+v", ds.Owners[0].Pets[1])
	}
	if len(ds.Sets.Left) != 3 || ds.Sets.Right[1] != 4 {
		t.Errorf("unexpected sets %+v", ds.Sets)
	}
}

func TestReadingValues_KeepDecodedTypes(t *testing.T) {
	ds, err := Parse([]byte(fixture))
	if err != nil {
		t.Fatal(err)
	}
	values := ds.ReadingValues()
	if _, ok := values[0].(int); !ok {
		t.Errorf("expected int, got %T", values[0])
	}
	if _, ok := values[1].(float64); !ok {
		t.Errorf("expected float64, got %T", values[1])
	}
	if _, ok := values[2].(string); !ok {
		t.Errorf("expected string, got %T", values[2])
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"malformed yaml", "owners: [", "parsing"},
		{"owner without name", "owners:\n  - age: 3\n", "owners[0].name"},
		{"negative pet age", "owners:\n  - name: A\n    pets:\n      - {name: P, species: dog, age: -1}\n", "owners[0].pets[0].age"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error containing %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestParse_ValidationCode(t *testing.T) {
	_, err := Parse([]byte("readings:\n  - {value: 1}\n"))
	if !errors.HasCode(err, errors.ErrCodeValidation) {
		t.Errorf("expected a validation error, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.yml")
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatal(err)
	}
	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ds.Owners[1].Name != "Johnny" {
		t.Errorf("unexpected owner %+v", ds.Owners[1])
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
