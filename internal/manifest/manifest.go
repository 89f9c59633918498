// Package manifest stores an explicit merge order for fragments in a YAML
// file, so that ordering no longer depends on parsing filename prefixes.
// A manifest frozen from the current prefix order reproduces the same
// output byte for byte.
package manifest

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/grampay/rulecat/internal/fragment"
	"github.com/grampay/rulecat/internal/fsutil"
)

// CurrentVersion is the manifest format version written by Save.
const CurrentVersion = 1

// Sentinel errors for manifest operations.
var (
	// ErrManifestNotFound indicates the manifest file does not exist.
	ErrManifestNotFound = errors.New("manifest: file not found")

	// ErrInvalidManifest indicates the manifest could not be parsed or is inconsistent.
	ErrInvalidManifest = errors.New("manifest: invalid manifest")

	// ErrManifestExists indicates a manifest is already present and would be replaced.
	ErrManifestExists = errors.New("manifest: file already exists")
)

// Entry assigns an explicit order to one fragment file.
type Entry struct {
	File  string `yaml:"file"`
	Order int    `yaml:"order"`
}

// Manifest is the on-disk ordering file.
type Manifest struct {
	Version   int     `yaml:"version"`
	Fragments []Entry `yaml:"fragments"`
}

// New returns an empty manifest at the current version.
func New() *Manifest {
	return &Manifest{Version: CurrentVersion}
}

// FromFragments freezes the order of frags. Each entry keeps the
// fragment's current Order, so prefix-based output is preserved.
func FromFragments(frags []fragment.Fragment) *Manifest {
	m := New()
	m.Fragments = make([]Entry, 0, len(frags))
	for _, f := range frags {
		m.Fragments = append(m.Fragments, Entry{File: f.Name, Order: f.Order})
	}
	return m
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	m := New()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidManifest, path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Save writes the manifest to path atomically.
func (m *Manifest) Save(path string) error {
	if m.Version == 0 {
		m.Version = CurrentVersion
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := fsutil.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}

// Validate checks entries for empty or nested file names, negative orders
// and duplicates.
func (m *Manifest) Validate() error {
	if m.Version < 0 || m.Version > CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidManifest, m.Version)
	}
	seen := make(map[string]bool, len(m.Fragments))
	for i, e := range m.Fragments {
		switch {
		case strings.TrimSpace(e.File) == "":
			return fmt.Errorf("%w: fragments[%d]: empty file name", ErrInvalidManifest, i)
		case e.File != filepath.Base(e.File) || strings.ContainsAny(e.File, `/\`):
			return fmt.Errorf("%w: fragments[%d]: %q must be a bare file name", ErrInvalidManifest, i, e.File)
		case e.Order < 0:
			return fmt.Errorf("%w: fragments[%d]: negative order %d", ErrInvalidManifest, i, e.Order)
		}
		key := normalize(e.File)
		if seen[key] {
			return fmt.Errorf("%w: duplicate entry %q", ErrInvalidManifest, e.File)
		}
		seen[key] = true
	}
	return nil
}

// Lookup returns the explicit order of the named fragment.
func (m *Manifest) Lookup(name string) (int, bool) {
	key := normalize(name)
	for _, e := range m.Fragments {
		if normalize(e.File) == key {
			return e.Order, true
		}
	}
	return 0, false
}

// Comparator orders fragments by their manifest entry. Fragments the
// manifest does not list fall back to their filename Order. Ties compare
// equal so a stable sort keeps listing order.
func (m *Manifest) Comparator() fragment.Comparator {
	index := m.index()
	key := func(f fragment.Fragment) int {
		if order, ok := index[normalize(f.Name)]; ok {
			return order
		}
		return f.Order
	}
	return func(a, b fragment.Fragment) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Missing returns the names of frags that have no manifest entry.
func (m *Manifest) Missing(frags []fragment.Fragment) []string {
	index := m.index()
	var missing []string
	for _, f := range frags {
		if _, ok := index[normalize(f.Name)]; !ok {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

func (m *Manifest) index() map[string]int {
	index := make(map[string]int, len(m.Fragments))
	for _, e := range m.Fragments {
		index[normalize(e.File)] = e.Order
	}
	return index
}

// normalize folds file names to NFC so names written on macOS (NFD) match
// names typed into the manifest.
func normalize(name string) string {
	return norm.NFC.String(name)
}
