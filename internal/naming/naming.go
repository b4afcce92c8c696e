package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ClassName converts an identifier to UpperCamelCase, used for record, enum, object
// and helper names: "my_cool_enum" -> "MyCoolEnum".
func ClassName(s string) string {
	// A Caser keeps state between calls and must not be shared.
	title := cases.Title(language.Und)

	var b strings.Builder
	for _, tok := range tokenize(s) {
		b.WriteString(title.String(tok))
	}

	return b.String()
}

// FuncName converts an identifier to snake_case: "getHTTPResponse" -> "get_http_response".
func FuncName(s string) string {
	return joinTokens(s, cases.Lower(language.Und))
}

// VarName converts an identifier to snake_case. The result never starts with an
// underscore, so names generated with a leading "_" cannot collide with it.
func VarName(s string) string {
	return joinTokens(s, cases.Lower(language.Und))
}

// ConstName converts an identifier to SHOUTY_SNAKE_CASE, used for enum variants.
func ConstName(s string) string {
	return joinTokens(s, cases.Upper(language.Und))
}

func joinTokens(s string, c cases.Caser) string {
	tokens := tokenize(s)
	for i, tok := range tokens {
		tokens[i] = c.String(tok)
	}

	return strings.Join(tokens, "_")
}

// tokenize splits an identifier on separators, lower-to-upper transitions and acronym
// ends:
//   - "OrderID" -> ["Order", "ID"]
//   - "my_cool_enum" -> ["my", "cool", "enum"]
//   - "XMLParser" -> ["XML", "Parser"]
func tokenize(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

func startsToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "orderID" splits before 'I'
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser" splits before 'P'
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
