package tokenizer

import (
	"regexp"
	"strings"
)

var (
	// Quoted strings are values, not keywords. Non-greedy, no escape handling:
	// an embedded quote simply ends the match early.
	quotedString = regexp.MustCompile(`"[^"]*"`)

	// Full-token decimal numeric literal: optional sign, integer or float,
	// optional exponent. Deliberately narrower than strconv.ParseFloat, which
	// would also swallow Inf, NaN and hex floats.
	numberLiteral = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

	// A keyword is a full-token run of word characters, nothing else.
	wordToken = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

	// Structural operators only separate tokens, they are never keywords.
	operators = strings.NewReplacer("=", " ", "{", " ", "}", " ")
)

// ExtractKeywords applies the per-line cleaning pipeline and returns the
// keyword tokens, in order of appearance. The steps run in a fixed order:
// comment cut, quoted-string blanking, operator neutralization, whitespace
// split, then per-token classification.
//
// The comment cut is quote-agnostic: a '#' inside a quoted string still
// truncates the line, because the cut runs before quote removal. Known
// quirk, kept for output compatibility.
func ExtractKeywords(line string) []string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}

	line = quotedString.ReplaceAllString(line, " ")
	line = operators.Replace(line)

	var keywords []string
	for _, token := range strings.Fields(line) {
		switch {
		case token == "=" || token == "{" || token == "}":
			// Residue guard; the replacer should already have removed these.
		case numberLiteral.MatchString(token):
		case wordToken.MatchString(token):
			keywords = append(keywords, token)
		}
	}
	return keywords
}
