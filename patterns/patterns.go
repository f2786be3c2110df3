// Package patterns compiles regular expressions with full-match semantics.
//
// Go's regexp package reports a match when any substring of the input
// matches. The precondition checks need the whole input to match, so every
// pattern is wrapped in \A(?:...)\z before it is compiled. The non-capturing
// group keeps alternations such as "a|b" from binding to only one anchor,
// and \A/\z are unaffected by a (?m) flag inside the pattern.
//
// Patterns use RE2 syntax. Constructs RE2 does not support (backreferences,
// lookaround) fail to compile and are reported as errors.ErrInvalidPattern.
package patterns

import (
	"fmt"
	"regexp"
	"regexp/syntax"

	"github.com/amp-labs/morepreconditions/errors"
)

// Compiler turns a pattern into a regexp that only matches entire inputs.
type Compiler interface {
	Compile(pattern string) (*regexp.Regexp, error)
}

// Direct is a stateless Compiler that compiles the pattern on every call.
// The zero value is ready to use.
type Direct struct{}

var _ Compiler = Direct{}

// Compile implements Compiler.
func (Direct) Compile(pattern string) (*regexp.Regexp, error) {
	return compile(pattern)
}

// Anchor wraps pattern so that it must consume the entire input. The result
// is only a full-match expression when pattern parses on its own; an
// unbalanced ")" would close the wrapping group early. Compile validates
// pattern before anchoring it.
func Anchor(pattern string) string {
	return `\A(?:` + pattern + `)\z`
}

// FullMatch reports whether the whole of s matches pattern.
func FullMatch(compiler Compiler, s, pattern string) (bool, error) {
	if compiler == nil {
		compiler = Direct{}
	}

	re, err := compiler.Compile(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(s), nil
}

func compile(pattern string) (*regexp.Regexp, error) {
	// Parse the raw pattern first so a stray ")" cannot escape the anchors.
	if _, err := syntax.Parse(pattern, syntax.Perl); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", errors.ErrInvalidPattern, pattern, err)
	}

	re, err := regexp.Compile(Anchor(pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", errors.ErrInvalidPattern, pattern, err)
	}

	return re, nil
}
