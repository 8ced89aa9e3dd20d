package domain

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"graphs", CategoryGraphs, false},
		{"  Trees ", CategoryTrees, false},
		{"HASHING", CategoryHashing, false},
		{"recurrences", CategoryRecurrences, false},
		{"geometry", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownCategory) {
					t.Errorf("ParseCategory(%q) error = %v, want ErrUnknownCategory", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCategory(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCategory_Order(t *testing.T) {
	for i, c := range AllCategories() {
		if c.Order() != i {
			t.Errorf("%q.Order() = %d, want %d", c, c.Order(), i)
		}
	}
	if got := Category("nope").Order(); got != len(AllCategories()) {
		t.Errorf("unknown Order() = %d, want %d", got, len(AllCategories()))
	}
}

func TestCategory_IsAsymptotic(t *testing.T) {
	if !CategoryRecurrences.IsAsymptotic() || !CategoryComplexity.IsAsymptotic() {
		t.Error("recurrences and complexity should be asymptotic")
	}
	if CategoryGraphs.IsAsymptotic() {
		t.Error("graphs should not be asymptotic")
	}
}

func TestLanguage_Next(t *testing.T) {
	tests := []struct {
		from Language
		want Language
	}{
		{LanguageJava, LanguageCPP},
		{LanguageCPP, LanguagePython},
		{LanguagePython, LanguagePseudo},
		{LanguagePseudo, LanguageJava},
		{Language("rust"), LanguageJava},
	}
	for _, tt := range tests {
		if got := tt.from.Next(); got != tt.want {
			t.Errorf("%q.Next() = %q, want %q", tt.from, got, tt.want)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input   string
		want    Language
		wantErr bool
	}{
		{"java", LanguageJava, false},
		{"C++", LanguageCPP, false},
		{"py", LanguagePython, false},
		{"Pseudo-code", LanguagePseudo, false},
		{"rust", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLanguage(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedLanguage) {
				t.Errorf("ParseLanguage(%q) error = %v, want ErrUnsupportedLanguage", tt.input, err)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLanguage(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
