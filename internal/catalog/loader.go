package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/algodrill/internal/domain"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// CatalogFile represents the YAML structure of a catalog or override pack
type CatalogFile struct {
	Version    string          `yaml:"version"`
	Generic    []CriterionFile `yaml:"generic"`
	Algorithms []AlgorithmFile `yaml:"algorithms"`
}

// AlgorithmFile represents the YAML structure for one algorithm
type AlgorithmFile struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Category  string            `yaml:"category"`
	Signature string            `yaml:"signature"`
	Hint      string            `yaml:"hint"`
	Question  string            `yaml:"question"`
	Work      string            `yaml:"work"`
	Code      map[string]string `yaml:"code"`
	Rubric    []CriterionFile   `yaml:"rubric"`
}

// CriterionFile represents the YAML structure for a rubric criterion
type CriterionFile struct {
	Name    string   `yaml:"name"`
	Weight  float64  `yaml:"weight"`
	Signals []string `yaml:"signals"`
	When    []string `yaml:"when"`
	Unless  []string `yaml:"unless"`
}

// Catalog is the parsed static text of every algorithm
type Catalog struct {
	Version    string
	Generic    domain.Rubric
	Algorithms []*domain.Algorithm
}

// Loader reads the embedded catalog and optional override packs
type Loader struct {
	overridePath string
}

// NewLoader creates a loader; overridePath may be empty
func NewLoader(overridePath string) *Loader {
	return &Loader{overridePath: overridePath}
}

// OverridePath returns the override pack directory
func (l *Loader) OverridePath() string {
	return l.overridePath
}

// Load parses the embedded catalog and applies override packs in file name order
func (l *Loader) Load() (*Catalog, error) {
	cat, err := Parse(embeddedCatalog)
	if err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	if l.overridePath == "" {
		return cat, nil
	}

	files, err := l.overrideFiles()
	if err != nil {
		return nil, err
	}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read override pack: %w", err)
		}
		override, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse override pack %s: %w", filepath.Base(path), err)
		}
		cat.merge(override)
	}
	return cat, nil
}

func (l *Loader) overrideFiles() ([]string, error) {
	entries, err := os.ReadDir(l.overridePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read catalog directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, filepath.Join(l.overridePath, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Parse decodes catalog YAML
func Parse(data []byte) (*Catalog, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	cat := &Catalog{
		Version: file.Version,
		Generic: toRubric(file.Generic),
	}
	seen := make(map[string]bool)
	for _, af := range file.Algorithms {
		algo, err := af.toAlgorithm()
		if err != nil {
			return nil, err
		}
		if seen[algo.ID] {
			return nil, fmt.Errorf("duplicate algorithm %q: %w", algo.ID, domain.ErrInvalidID)
		}
		seen[algo.ID] = true
		cat.Algorithms = append(cat.Algorithms, algo)
	}
	return cat, nil
}

func (af AlgorithmFile) toAlgorithm() (*domain.Algorithm, error) {
	id, err := domain.NewAlgorithmID(af.ID)
	if err != nil {
		return nil, err
	}

	algo := &domain.Algorithm{
		ID:            id.String(),
		Name:          af.Name,
		Signature:     af.Signature,
		Hint:          af.Hint,
		Question:      af.Question,
		Work:          splitLines(af.Work),
		ReferenceCode: make(map[domain.Language]string, len(af.Code)),
		Rubric:        toRubric(af.Rubric),
	}

	// override packs may leave the category out
	if af.Category != "" {
		c, err := domain.ParseCategory(af.Category)
		if err != nil {
			return nil, fmt.Errorf("algorithm %s: %w", af.ID, err)
		}
		algo.Category = c
	}

	for name, code := range af.Code {
		lang, err := domain.ParseLanguage(name)
		if err != nil {
			return nil, fmt.Errorf("algorithm %s: %w", af.ID, err)
		}
		algo.ReferenceCode[lang] = strings.TrimRight(code, "\n")
	}
	return algo, nil
}

func toRubric(files []CriterionFile) domain.Rubric {
	r := domain.Rubric{Criteria: make([]domain.RubricCriterion, 0, len(files))}
	for _, c := range files {
		weight := c.Weight
		if weight <= 0 {
			weight = 1
		}
		r.Criteria = append(r.Criteria, domain.RubricCriterion{
			Name:    c.Name,
			Weight:  weight,
			Signals: c.Signals,
			When:    c.When,
			Unless:  c.Unless,
		})
	}
	return r
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// merge overlays the non-empty fields of other onto c
func (c *Catalog) merge(other *Catalog) {
	if len(other.Generic.Criteria) > 0 {
		c.Generic = other.Generic
	}

	index := make(map[string]*domain.Algorithm, len(c.Algorithms))
	for _, a := range c.Algorithms {
		index[a.ID] = a
	}

	for _, o := range other.Algorithms {
		base, ok := index[o.ID]
		if !ok {
			c.Algorithms = append(c.Algorithms, o)
			index[o.ID] = o
			continue
		}
		if o.Name != "" {
			base.Name = o.Name
		}
		if o.Category != "" {
			base.Category = o.Category
		}
		if o.Signature != "" {
			base.Signature = o.Signature
		}
		if o.Hint != "" {
			base.Hint = o.Hint
		}
		if o.Question != "" {
			base.Question = o.Question
		}
		if len(o.Work) > 0 {
			base.Work = o.Work
		}
		for lang, code := range o.ReferenceCode {
			base.ReferenceCode[lang] = code
		}
		if len(o.Rubric.Criteria) > 0 {
			base.Rubric = o.Rubric
		}
	}
}
