package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// PlainStyle is a minimal syntax highlighting style for Chroma.
// It leaves most text as-is, and fades comments ever so slightly.
var PlainStyle = chroma.MustNewStyle("plain", map[chroma.TokenType]string{
	chroma.Comment:    "#666666",
	chroma.PreWrapper: "bg:#eeeeee",
	chroma.Background: "bg:#eeeeee",
})

// AtomDarkStyle is a dark style after the Atom Dark palette.
// This is the default style for snippets.
var AtomDarkStyle = chroma.MustNewStyle("atom-dark", map[chroma.TokenType]string{
	chroma.Background:         "#c5c8c6 bg:#1d1f21",
	chroma.PreWrapper:         "#c5c8c6 bg:#1d1f21",
	chroma.Comment:            "#7c7c7c",
	chroma.CommentPreproc:     "#96cbfe",
	chroma.Punctuation:        "#c5c8c6",
	chroma.Keyword:            "#96cbfe",
	chroma.KeywordConstant:    "#99cc99",
	chroma.KeywordType:        "#ffffb6",
	chroma.NameTag:            "#96cbfe",
	chroma.NameAttribute:      "#a8ff60",
	chroma.NameBuiltin:        "#a8ff60",
	chroma.NameClass:          "underline #ffffb6",
	chroma.NameConstant:       "#99cc99",
	chroma.NameEntity:         "#ffffb6",
	chroma.NameFunction:       "#dad085",
	chroma.NameVariable:       "#c6c5fe",
	chroma.NameProperty:       "#96cbfe",
	chroma.LiteralString:      "#a8ff60",
	chroma.LiteralStringChar:  "#a8ff60",
	chroma.LiteralStringRegex: "#e9c062",
	chroma.LiteralNumber:      "#ff73fd",
	chroma.Operator:           "#ededed",
	chroma.GenericDeleted:     "#f92672",
	chroma.GenericInserted:    "#a8ff60",
	chroma.GenericStrong:      "bold",
	chroma.GenericEmph:        "italic",
	chroma.Error:              "#fd971f",
})

// DefaultStyle is the style used when none is specified.
var DefaultStyle = AtomDarkStyle

func init() {
	styles.Register(PlainStyle)
	styles.Register(AtomDarkStyle)
}

// StyleFor looks up a registered Chroma style by name.
// It reports false if there's no style with that name.
func StyleFor(name string) (*chroma.Style, bool) {
	s, ok := styles.Registry[name]
	return s, ok
}
