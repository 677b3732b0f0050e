package policy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pack is a YAML file of extra rules layered over the base catalog.
// We avoid yaml:",inline" because Catalog also has a `version` field.
type Pack struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	PackVersion string `yaml:"version"`
	Author      string `yaml:"author"`
	Rules       []Rule `yaml:"rules"`
}

// PackInfo is a summary of a pack for listing.
type PackInfo struct {
	Name        string
	Description string
	Version     string
	Author      string
	Enabled     bool
	Path        string
	RuleCount   int
	Err         error
}

// LoadPacks reads all .yaml files from the packs directory and merges them
// into the base catalog. A pack rule whose ID already exists replaces the
// earlier rule in place; new rules are appended in file order. Files whose
// name starts with an underscore are listed but not merged.
func LoadPacks(packsDir string, base *Catalog) (*Catalog, []PackInfo, error) {
	var infos []PackInfo

	entries, err := os.ReadDir(packsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil, nil
		}
		return nil, nil, err
	}

	result := cloneCatalog(base)

	for _, entry := range entries {
		if entry.IsDir() || !isYAMLFile(entry.Name()) {
			continue
		}

		path := filepath.Join(packsDir, entry.Name())

		// Check if pack is disabled (prefixed with underscore)
		baseName := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		enabled := !strings.HasPrefix(baseName, "_")

		pack, err := loadPack(path)
		if err != nil {
			infos = append(infos, PackInfo{
				Name:    baseName,
				Enabled: enabled,
				Path:    path,
				Err:     err,
			})
			continue
		}

		info := PackInfo{
			Name:        pack.Name,
			Description: pack.Description,
			Version:     pack.PackVersion,
			Author:      pack.Author,
			Enabled:     enabled,
			Path:        path,
			RuleCount:   len(pack.Rules),
		}
		if info.Name == "" {
			info.Name = baseName
		}
		infos = append(infos, info)

		if !enabled {
			continue
		}

		mergePackInto(result, pack)
	}

	return result, infos, nil
}

// PackFile resolves a pack name to its file in packsDir and reports whether
// it is currently enabled.
func PackFile(packsDir, name string) (path string, enabled bool, err error) {
	name = strings.TrimPrefix(name, "_")
	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(packsDir, name+ext)
		if _, err := os.Stat(p); err == nil {
			return p, true, nil
		}
		p = filepath.Join(packsDir, "_"+name+ext)
		if _, err := os.Stat(p); err == nil {
			return p, false, nil
		}
	}
	return "", false, fmt.Errorf("pack %q not found in %s", name, packsDir)
}

// SetPackEnabled renames a pack file to toggle its underscore prefix.
// It is a no-op when the pack is already in the requested state.
func SetPackEnabled(packsDir, name string, enable bool) error {
	path, enabled, err := PackFile(packsDir, name)
	if err != nil {
		return err
	}
	if enabled == enable {
		return nil
	}

	file := filepath.Base(path)
	target := "_" + file
	if enable {
		target = strings.TrimPrefix(file, "_")
	}
	if err := os.Rename(path, filepath.Join(packsDir, target)); err != nil {
		return fmt.Errorf("failed to rename pack: %w", err)
	}
	return nil
}

// ReadPack loads a single pack file.
func ReadPack(path string) (*Pack, error) {
	return loadPack(path)
}

func loadPack(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse pack %s: %w", path, err)
	}

	return &pack, nil
}

func mergePackInto(target *Catalog, pack *Pack) {
	index := make(map[string]int, len(target.Rules))
	for i, r := range target.Rules {
		index[r.ID] = i
	}
	for _, r := range pack.Rules {
		if i, ok := index[r.ID]; ok {
			target.Rules[i] = r
			continue
		}
		index[r.ID] = len(target.Rules)
		target.Rules = append(target.Rules, r)
	}
}

func isYAMLFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
