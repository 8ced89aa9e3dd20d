package analyzer

import (
	"testing"

	"github.com/felixgeelhaar/algodrill/internal/domain"
)

var searchRubric = domain.Rubric{Criteria: []domain.RubricCriterion{
	{Name: "Loop", Weight: 2, Signals: []string{"for", "while"}},
	{Name: "Comparison", Weight: 2, Signals: []string{"==", "equals"}},
	{Name: "Function Structure", Weight: 1, Signals: []string{"return", "void", "def ", "func "}},
}}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  FOR  i\tIN\n range ", "for i in range"},
		{"x ← y", "x y"},
		{"a\x00b", "a b"},
		{"Θ(n)", "(n)"},
	}

	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetectLanguage(t *testing.T) {
	a := New()

	tests := []struct {
		name string
		code string
		want string
	}{
		{"empty", "", LangNone},
		{"cpp cout", `cout << x;`, LangCPP},
		{"cpp include", "#include <vector>", LangCPP},
		{"cpp arrow", "node->left = nullptr;", LangCPP},
		{"java", `System.out.println(x);`, LangJava},
		{"java class", "public class Main {}", LangJava},
		{"python", "def search(arr, target):", LangPython},
		{"python self", "self.items.append(x)", LangPython},
		{"pseudo", "for i = 1 to n", LangPseudo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.DetectLanguage(Sanitize(tt.code)); got != tt.want {
				t.Errorf("DetectLanguage(%q) = %q; want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestAnalyze_Empty(t *testing.T) {
	r := New().Analyze("   \n\t", searchRubric)

	if r.Language != LangNone {
		t.Errorf("Language = %q; want %q", r.Language, LangNone)
	}
	if r.Percentage != 0 {
		t.Errorf("Percentage = %d; want 0", r.Percentage)
	}
	if len(r.Feedback) != 0 {
		t.Errorf("Feedback len = %d; want 0", len(r.Feedback))
	}
}

func TestAnalyze_FullMarks(t *testing.T) {
	code := `def linear_search(arr, target):
    for i in range(len(arr)):
        if arr[i] == target:
            return i
    return -1`

	r := New().Analyze(code, searchRubric)

	if r.Language != LangPython {
		t.Errorf("Language = %q; want %q", r.Language, LangPython)
	}
	if r.Percentage != 100 {
		t.Errorf("Percentage = %d; want 100", r.Percentage)
	}
	if r.Passed() != 3 {
		t.Errorf("Passed() = %d; want 3", r.Passed())
	}
}

func TestAnalyze_MissingLogic(t *testing.T) {
	r := New().Analyze("int f(int x) { return x; }", searchRubric)

	// 1 of 5 points
	if r.Percentage != 20 {
		t.Errorf("Percentage = %d; want 20", r.Percentage)
	}
	if len(r.Feedback) != 3 {
		t.Fatalf("Feedback len = %d; want 3", len(r.Feedback))
	}
	if r.Feedback[0].Passed || r.Feedback[0].Text != "Missing logic: Loop" {
		t.Errorf("Feedback[0] = %+v; want failed Loop", r.Feedback[0])
	}
	if !r.Feedback[2].Passed || r.Feedback[2].Text != "Function Structure" {
		t.Errorf("Feedback[2] = %+v; want passed Function Structure", r.Feedback[2])
	}
}

func TestAnalyze_Guards(t *testing.T) {
	rubric := domain.Rubric{Criteria: []domain.RubricCriterion{
		{Name: "Visited Set", Weight: 2, Signals: []string{"visited"}},
		{Name: "Explicit Stack", Weight: 2, Signals: []string{"push", "append"}, When: []string{"stack"}},
		{Name: "Recursion", Weight: 2, Signals: []string{"dfs("}, Unless: []string{"stack"}},
	}}

	iterative := "visited = set(); stack = [s]; stack.append(v)"
	r := New().Analyze(iterative, rubric)
	if r.MaxScore != 4 {
		t.Errorf("iterative MaxScore = %v; want 4", r.MaxScore)
	}
	if r.Percentage != 100 {
		t.Errorf("iterative Percentage = %d; want 100", r.Percentage)
	}

	recursive := "visited.add(u); for v in adj[u]: dfs(v)"
	r = New().Analyze(recursive, rubric)
	if r.MaxScore != 4 {
		t.Errorf("recursive MaxScore = %v; want 4", r.MaxScore)
	}
	for _, f := range r.Feedback {
		if f.Criterion == "Explicit Stack" {
			t.Error("Explicit Stack should be skipped without a stack")
		}
	}
}

func TestAnalyze_Rounding(t *testing.T) {
	rubric := domain.Rubric{Criteria: []domain.RubricCriterion{
		{Name: "A", Weight: 1, Signals: []string{"alpha"}},
		{Name: "B", Weight: 1, Signals: []string{"beta"}},
		{Name: "C", Weight: 1, Signals: []string{"gamma"}},
	}}

	r := New().Analyze("alpha beta", rubric)
	if r.Percentage != 67 {
		t.Errorf("Percentage = %d; want 67", r.Percentage)
	}
}

func TestAnalyze_NoCriteria(t *testing.T) {
	r := New().Analyze("anything", domain.Rubric{})
	if r.Percentage != 0 {
		t.Errorf("Percentage = %d; want 0", r.Percentage)
	}
	if r.Language != LangPseudo {
		t.Errorf("Language = %q; want %q", r.Language, LangPseudo)
	}
}
