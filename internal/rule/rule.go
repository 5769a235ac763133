// Package rule parses werkzeug-style URL rules into static and
// placeholder segments.
//
// A placeholder fragment has the form <type:name>, where type may carry
// converter arguments, e.g. <string(length=2):name1>. The converter
// arguments are captured verbatim as part of the type string and never
// interpreted further. A fragment that does not match the placeholder
// form exactly (including any whitespace inside the angle brackets) is
// treated as static text.
package rule

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Param describes one typed placeholder.
type Param struct {
	Type string // converter spec as written, e.g. "int" or "int(min=3)"
	Name string // parameter name
}

// Segment is one '/'-separated fragment of a rule.
type Segment struct {
	Raw   string // fragment as written
	Param *Param // nil for static fragments
}

// placeholder is the participle grammar for one <type:name> fragment.
// The type portion may itself contain colons; the parameter name is
// always the part after the last one.
type placeholder struct {
	Parts []string `parser:"'<' @Part (':' @Part)+ '>'"`
}

var placeholderParser = participle.MustBuild[placeholder](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "LAngle", Pattern: `<`},
		{Name: "RAngle", Pattern: `>`},
		{Name: "Colon", Pattern: `:`},
		{Name: "Part", Pattern: `[^<>:\s]+`},
		{Name: "Space", Pattern: `\s+`},
	})),
)

// Split breaks a raw rule into its segments. The fragment list mirrors
// strings.Split on '/', so a rule with leading, trailing or doubled
// slashes yields empty static segments in the corresponding positions.
func Split(rawRule string) []Segment {
	fragments := strings.Split(rawRule, "/")
	segments := make([]Segment, len(fragments))
	for i, fragment := range fragments {
		segments[i] = Segment{Raw: fragment, Param: parseFragment(fragment)}
	}
	return segments
}

func parseFragment(fragment string) *Param {
	if !strings.HasPrefix(fragment, "<") || !strings.HasSuffix(fragment, ">") {
		return nil
	}
	ph, err := placeholderParser.ParseString("", fragment)
	if err != nil {
		return nil
	}
	last := len(ph.Parts) - 1
	return &Param{
		Type: strings.Join(ph.Parts[:last], ":"),
		Name: ph.Parts[last],
	}
}
