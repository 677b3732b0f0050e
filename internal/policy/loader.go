package policy

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML rule catalog. A missing file is not an error: the
// built-in catalog is returned instead.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCatalog(), nil
		}
		return nil, err
	}

	return Parse(data)
}

// Parse decodes a YAML rule catalog.
func Parse(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if catalog.Version == "" {
		catalog.Version = CatalogVersion
	}
	return &catalog, nil
}

// WriteYAML encodes the catalog in the same format Load reads.
// Programmatic Check predicates cannot be expressed in YAML and are dropped.
func WriteYAML(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return enc.Close()
}

func cloneCatalog(c *Catalog) *Catalog {
	clone := &Catalog{Version: c.Version}
	clone.Rules = make([]Rule, len(c.Rules))
	copy(clone.Rules, c.Rules)
	return clone
}
