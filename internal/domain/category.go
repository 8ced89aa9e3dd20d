package domain

import (
	"fmt"
	"strings"
)

// Category groups algorithms by topic
type Category string

const (
	CategoryGraphs      Category = "graphs"
	CategoryTrees       Category = "trees"
	CategorySorting     Category = "sorting"
	CategoryLinear      Category = "linear"
	CategoryHashing     Category = "hashing"
	CategorySearching   Category = "searching"
	CategoryRecurrences Category = "recurrences"
	CategoryComplexity  Category = "complexity"
)

// AllCategories returns every category in display order
func AllCategories() []Category {
	return []Category{
		CategorySearching,
		CategorySorting,
		CategoryGraphs,
		CategoryTrees,
		CategoryLinear,
		CategoryHashing,
		CategoryRecurrences,
		CategoryComplexity,
	}
}

// ParseCategory converts a string to a Category
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("parse category %q: %w", s, ErrUnknownCategory)
	}
	return c, nil
}

// IsValid reports whether the category is known
func (c Category) IsValid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// Order returns the display position of the category, or len(AllCategories) if unknown
func (c Category) Order() int {
	for i, known := range AllCategories() {
		if c == known {
			return i
		}
	}
	return len(AllCategories())
}

// Title returns a display title for the category
func (c Category) Title() string {
	switch c {
	case CategoryLinear:
		return "Linear Structures"
	case CategoryRecurrences:
		return "Recurrences"
	}
	s := string(c)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// IsAsymptotic reports whether answers in this category are asymptotic bounds
func (c Category) IsAsymptotic() bool {
	return c == CategoryRecurrences || c == CategoryComplexity
}
