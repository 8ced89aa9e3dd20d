// Package answer compares free-text user answers with canonical answers.
//
// Both sides are reduced to a comparison key: lower-cased, keeping only
// letters, digits, '^', parentheses and the sign of negative numbers.
// Separators such as spaces, commas and arrows are dropped, so "A, B, C",
// "a,b,c" and "A -> B -> C" share the key "abc". As a consequence, numeric
// lists whose digits concatenate to the same string compare equal ("1, 23"
// and "12, 3").
package answer

import (
	"strings"

	"github.com/felixgeelhaar/algodrill/internal/domain"
)

// Verdict is the outcome of a check
type Verdict struct {
	Correct  bool
	Expected string
}

// Key reduces s to its comparison key. A minus sign survives only when it
// starts a number, so "-2" and "2" keep distinct keys while "A-B" does not.
func Key(s string) string {
	var b strings.Builder
	runes := []rune(strings.ToLower(s))
	for i, r := range runes {
		switch {
		case isKeyRune(r):
			b.WriteRune(r)
		case r == '-' && i+1 < len(runes) && isDigit(runes[i+1]) && (i == 0 || !isKeyRune(runes[i-1])):
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isKeyRune(r rune) bool {
	return r >= 'a' && r <= 'z' || isDigit(r) || r == '^' || r == '(' || r == ')'
}

// Equal reports whether user and canonical share a key. An empty user
// answer is never correct.
func Equal(user, canonical string) bool {
	k := Key(user)
	return k != "" && k == Key(canonical)
}

var notations = []string{"theta(", "omega(", "bigo(", "o("}

// bound strips an asymptotic notation wrapper from a key
func bound(key string) string {
	for _, n := range notations {
		if strings.HasPrefix(key, n) && strings.HasSuffix(key, ")") {
			key = key[len(n)-1:]
			break
		}
	}
	for wrapped(key) {
		key = key[1 : len(key)-1]
	}
	return key
}

// wrapped reports whether the whole key is enclosed by one pair of parens
func wrapped(key string) bool {
	if len(key) < 2 || key[0] != '(' || key[len(key)-1] != ')' {
		return false
	}
	depth := 0
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(key)-1 {
				return false
			}
		}
	}
	return depth == 0
}

// MatchAsymptotic compares bounds ignoring the notation used, so "O(n^2)",
// "Θ(n^2)" and "n^2" all match "Theta(n^2)"
func MatchAsymptotic(user, canonical string) bool {
	u := bound(Key(user))
	return u != "" && u == bound(Key(canonical))
}

// Check compares user with canonical using the rule for category
func Check(category domain.Category, user, canonical string) Verdict {
	v := Verdict{Expected: canonical}
	if category.IsAsymptotic() {
		v.Correct = MatchAsymptotic(user, canonical)
	} else {
		v.Correct = Equal(user, canonical)
	}
	return v
}
