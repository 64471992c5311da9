package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var embedded []byte

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Parse(embedded)
})

// Default returns the catalog baked into the binary. It is parsed once per process.
func Default() (*Catalog, error) {
	return loadDefault()
}

// Load returns the catalog stored at path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

type document struct {
	Semesters   []int `yaml:"semesters"`
	Departments []struct {
		ID        string           `yaml:"id"`
		Name      string           `yaml:"name"`
		Offerings map[int][]Course `yaml:"offerings"`
	} `yaml:"departments"`
}

// Parse decodes a catalog document and validates it.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("failed to decode catalog: empty document")
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	c := &Catalog{
		semesters:   doc.Semesters,
		departments: make([]Department, 0, len(doc.Departments)),
		byID:        make(map[string]int, len(doc.Departments)),
	}
	for _, d := range doc.Departments {
		offerings := d.Offerings
		if offerings == nil {
			offerings = map[int][]Course{}
		}
		id := strings.ToLower(strings.TrimSpace(d.ID))
		if _, dup := c.byID[id]; !dup {
			c.byID[id] = len(c.departments)
		}
		c.departments = append(c.departments, Department{
			ID:        id,
			Name:      strings.TrimSpace(d.Name),
			offerings: offerings,
		})
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}
	return c, nil
}
