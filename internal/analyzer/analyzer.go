// Package analyzer scores code submissions against keyword rubrics. It does
// not parse or run code; a criterion passes when any of its signals appears
// in the sanitized source.
package analyzer

import (
	"math"
	"strings"
	"unicode"

	"github.com/felixgeelhaar/algodrill/internal/domain"
)

// Detected language labels
const (
	LangNone   = "None"
	LangCPP    = "C++"
	LangJava   = "Java"
	LangPython = "Python"
	LangPseudo = "Pseudo-code"
)

// Marker identifies a language by substrings of sanitized code
type Marker struct {
	Language string
	Signals  []string
}

// Finding is the outcome of one rubric criterion
type Finding struct {
	Criterion string
	Passed    bool
	Text      string
}

// Report summarizes a submission
type Report struct {
	Language   string
	Score      float64
	MaxScore   float64
	Percentage int
	Feedback   []Finding
}

// Passed returns the number of passing findings
func (r Report) Passed() int {
	n := 0
	for _, f := range r.Feedback {
		if f.Passed {
			n++
		}
	}
	return n
}

// Analyzer matches code against rubrics
type Analyzer struct {
	markers []Marker
}

// New creates an analyzer with the default language markers
func New() *Analyzer {
	return &Analyzer{
		markers: defaultMarkers(),
	}
}

// Analyze scores code against rubric
func (a *Analyzer) Analyze(code string, rubric domain.Rubric) Report {
	clean := Sanitize(code)
	if clean == "" {
		return Report{Language: LangNone}
	}

	report := Report{Language: a.DetectLanguage(clean)}
	for _, c := range rubric.Criteria {
		if !applies(clean, c) {
			continue
		}
		report.MaxScore += c.Weight

		if containsAny(clean, c.Signals) {
			report.Score += c.Weight
			report.Feedback = append(report.Feedback, Finding{Criterion: c.Name, Passed: true, Text: c.Name})
			continue
		}
		report.Feedback = append(report.Feedback, Finding{
			Criterion: c.Name,
			Text:      "Missing logic: " + c.Name,
		})
	}

	if report.MaxScore > 0 {
		report.Percentage = int(math.Round(report.Score / report.MaxScore * 100))
	}
	return report
}

// DetectLanguage returns the first language whose markers appear in code.
// code is expected to be sanitized.
func (a *Analyzer) DetectLanguage(code string) string {
	if code == "" {
		return LangNone
	}
	for _, m := range a.markers {
		if containsAny(code, m.Signals) {
			return m.Language
		}
	}
	return LangPseudo
}

// Sanitize replaces non-printable and non-ASCII runes with spaces, collapses
// whitespace, and lower-cases the result
func Sanitize(code string) string {
	mapped := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || (r < 0x20 && !unicode.IsSpace(r)) || r == 0x7f {
			return ' '
		}
		return r
	}, code)
	return strings.ToLower(strings.Join(strings.Fields(mapped), " "))
}

func applies(code string, c domain.RubricCriterion) bool {
	if len(c.When) > 0 && !containsAny(code, c.When) {
		return false
	}
	if len(c.Unless) > 0 && containsAny(code, c.Unless) {
		return false
	}
	return true
}

func containsAny(code string, signals []string) bool {
	for _, s := range signals {
		s = strings.ToLower(s)
		if strings.TrimSpace(s) == "" {
			continue
		}
		if strings.Contains(code, s) {
			return true
		}
	}
	return false
}

func defaultMarkers() []Marker {
	return []Marker{
		{Language: LangCPP, Signals: []string{"->", "::", "cout", "#include", "<vector>"}},
		{Language: LangJava, Signals: []string{"system.out", "public void", "arraylist", "public class", "public static"}},
		{Language: LangPython, Signals: []string{"def ", "print(", "self."}},
	}
}
