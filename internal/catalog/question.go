package catalog

import "github.com/felixgeelhaar/algodrill/internal/domain"

// Question is either fixed text or a template over the generated instance
type Question struct {
	text     string
	template func(domain.Instance) string
}

// StaticQuestion returns a question with fixed text
func StaticQuestion(text string) Question {
	return Question{text: text}
}

// TemplatedQuestion returns a question rendered from the instance; fallback
// is used when the template cannot render
func TemplatedQuestion(fallback string, fn func(domain.Instance) string) Question {
	return Question{text: fallback, template: fn}
}

// IsTemplated reports whether the text depends on the instance
func (q Question) IsTemplated() bool {
	return q.template != nil
}

// Render returns the question text for inst
func (q Question) Render(inst domain.Instance) string {
	if q.template != nil && inst != nil {
		if s := q.template(inst); s != "" {
			return s
		}
	}
	return q.text
}
