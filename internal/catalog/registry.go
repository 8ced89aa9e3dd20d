package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/felixgeelhaar/algodrill/internal/domain"
	"github.com/felixgeelhaar/algodrill/internal/generator"
)

// Entry is an algorithm bound to its instance shape and solver
type Entry struct {
	Algorithm *domain.Algorithm
	Shape     Shape
	Question  Question
	solve     solveFunc
}

// ID returns the algorithm id
func (e *Entry) ID() string { return e.Algorithm.ID }

// Name returns the display name
func (e *Entry) Name() string { return e.Algorithm.Name }

// Category returns the algorithm category
func (e *Entry) Category() domain.Category { return e.Algorithm.Category }

// Registry provides access to the bound algorithm catalog
type Registry struct {
	loader  *Loader
	mu      sync.RWMutex
	entries map[string]*Entry
	order   []string
	generic domain.Rubric
	version string
	loaded  bool
}

// NewRegistry creates a new algorithm registry
func NewRegistry(loader *Loader) *Registry {
	return &Registry{
		loader:  loader,
		entries: make(map[string]*Entry),
	}
}

// Load parses the catalog and binds every entry
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cat, err := r.loader.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	binds := bindings()
	entries := make(map[string]*Entry, len(cat.Algorithms))
	order := make([]string, 0, len(cat.Algorithms))

	for _, algo := range cat.Algorithms {
		if !algo.Category.IsValid() {
			return fmt.Errorf("algorithm %s: %w", algo.ID, domain.ErrUnknownCategory)
		}
		b, ok := binds[algo.ID]
		if !ok {
			return fmt.Errorf("algorithm %s: %w", algo.ID, domain.ErrMissingBinding)
		}
		if algo.Category != b.category {
			return fmt.Errorf("algorithm %s in category %s, solver expects %s: %w", algo.ID, algo.Category, b.category, domain.ErrInstanceMismatch)
		}

		shape, err := categoryShape(algo.Category)
		if err != nil {
			return fmt.Errorf("algorithm %s: %w", algo.ID, err)
		}
		if b.shape != nil {
			b.shape(&shape)
		}

		q := StaticQuestion(algo.Question)
		if b.question != nil {
			q = TemplatedQuestion(algo.Question, b.question)
		}

		entries[algo.ID] = &Entry{
			Algorithm: algo,
			Shape:     shape,
			Question:  q,
			solve:     b.solve,
		}
		order = append(order, algo.ID)
	}

	for id := range binds {
		if _, ok := entries[id]; !ok {
			return fmt.Errorf("binding %s has no catalog entry: %w", id, domain.ErrMissingBinding)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := entries[order[i]], entries[order[j]]
		if a.Category() != b.Category() {
			return a.Category().Order() < b.Category().Order()
		}
		return a.ID() < b.ID()
	})

	r.entries = entries
	r.order = order
	r.generic = cat.Generic
	r.version = cat.Version
	r.loaded = true
	return nil
}

// Reload re-reads the catalog and override packs
func (r *Registry) Reload() error {
	r.mu.Lock()
	r.entries = make(map[string]*Entry)
	r.order = nil
	r.loaded = false
	r.mu.Unlock()

	return r.Load()
}

// Get returns an entry by id
func (r *Registry) Get(id string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("get %q: %w", id, domain.ErrAlgorithmNotFound)
	}
	return e, nil
}

// List returns all entries sorted by category, then id
func (r *Registry) List() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

// ListByCategory returns the entries of one category
func (r *Registry) ListByCategory(c domain.Category) []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Entry
	for _, id := range r.order {
		if e := r.entries[id]; e.Category() == c {
			out = append(out, e)
		}
	}
	return out
}

// Categories returns the categories that have at least one entry, in display order
func (r *Registry) Categories() []domain.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	present := make(map[domain.Category]bool)
	for _, e := range r.entries {
		present[e.Category()] = true
	}

	var out []domain.Category
	for _, c := range domain.AllCategories() {
		if present[c] {
			out = append(out, c)
		}
	}
	return out
}

// NewInstance generates a problem instance for id
func (r *Registry) NewInstance(id string, gen *generator.Generator, sizes Sizes) (domain.Instance, error) {
	e, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	inst, err := e.Shape.Generate(gen, sizes)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", id, err)
	}
	return inst, nil
}

// Solve returns the canonical answer for inst. A nil or mismatched instance
// yields the loading placeholder.
func (r *Registry) Solve(id string, inst domain.Instance) (domain.Answer, error) {
	e, err := r.Get(id)
	if err != nil {
		return domain.Answer{}, err
	}
	if inst == nil {
		return domain.Answer{Text: AnswerLoading}, nil
	}
	if inst.Kind() != e.Shape.Kind {
		return domain.Answer{Text: AnswerLoading}, fmt.Errorf("solve %s with %s instance: %w", id, inst.Kind(), domain.ErrInstanceMismatch)
	}

	ans, ok := e.solve(inst)
	if !ok {
		return domain.Answer{Text: AnswerLoading}, nil
	}
	if len(ans.Trace) == 0 && len(e.Algorithm.Work) > 0 {
		ans.Trace = append([]string(nil), e.Algorithm.Work...)
	}
	return ans, nil
}

// Question renders the question text for inst
func (r *Registry) Question(id string, inst domain.Instance) (string, error) {
	e, err := r.Get(id)
	if err != nil {
		return "", err
	}
	return e.Question.Render(inst), nil
}

// Rubric returns the entry rubric followed by the generic criteria
func (r *Registry) Rubric(id string) (domain.Rubric, error) {
	e, err := r.Get(id)
	if err != nil {
		return domain.Rubric{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	criteria := make([]domain.RubricCriterion, 0, len(e.Algorithm.Rubric.Criteria)+len(r.generic.Criteria))
	criteria = append(criteria, e.Algorithm.Rubric.Criteria...)
	criteria = append(criteria, r.generic.Criteria...)
	return domain.Rubric{Criteria: criteria}, nil
}

// Stats returns statistics about the loaded catalog
func (r *Registry) Stats() RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := RegistryStats{
		Version:        r.version,
		AlgorithmCount: len(r.entries),
		ByCategory:     make(map[string]int),
	}
	for _, e := range r.entries {
		stats.ByCategory[string(e.Category())]++
		if e.Question.IsTemplated() {
			stats.TemplatedCount++
		}
	}
	return stats
}

// RegistryStats holds statistics about the registry
type RegistryStats struct {
	Version        string
	AlgorithmCount int
	TemplatedCount int
	ByCategory     map[string]int
}
