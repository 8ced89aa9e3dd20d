package domain

// Algorithm is the static description of a practice problem
type Algorithm struct {
	ID            string // slug: "bst_successor"
	Name          string
	Category      Category
	Signature     string
	Question      string // static question text; the fallback when templated
	Hint          string
	Work          []string // worked solution for problems without generated data
	ReferenceCode map[Language]string
	Rubric        Rubric
}

// Rubric defines keyword criteria for a code submission
type Rubric struct {
	Criteria []RubricCriterion
}

// RubricCriterion is a single weighted keyword check
type RubricCriterion struct {
	Name    string
	Weight  float64
	Signals []string // any substring passes
	When    []string // criterion applies only if one of these is present
	Unless  []string // criterion is skipped if one of these is present
}

// MaxScore returns the sum of criterion weights
func (r Rubric) MaxScore() float64 {
	total := 0.0
	for _, c := range r.Criteria {
		total += c.Weight
	}
	return total
}

// Code returns the reference snippet for lang
func (a *Algorithm) Code(lang Language) (string, bool) {
	code, ok := a.ReferenceCode[lang]
	if !ok || code == "" {
		return "", false
	}
	return code, true
}

// Languages returns the languages that have reference code, in cycle order
func (a *Algorithm) Languages() []Language {
	var langs []Language
	for _, lang := range Languages() {
		if _, ok := a.Code(lang); ok {
			langs = append(langs, lang)
		}
	}
	return langs
}
