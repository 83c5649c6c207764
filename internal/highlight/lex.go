package highlight

import (
	"bytes"
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// PlainLexer is a [Lexer] that treats its input as unstyled text.
var PlainLexer Lexer = &chromaLexer{l: chroma.Coalesce(lexers.Fallback)}

// Lexer analyzes source code and generates a stream of tokens.
type Lexer interface {
	Lex(src []byte) ([]chroma.Token, error)
}

// chromaLexer builds a [Lexer] from a Chroma lexer.
type chromaLexer struct{ l chroma.Lexer }

// Lex lexically analyzes the given source code using Chroma.
//
// The token stream reproduces src exactly:
// line endings are left alone,
// and a trailing newline added by the lexer is dropped.
func (cl *chromaLexer) Lex(src []byte) ([]chroma.Token, error) {
	tokens, err := chroma.Tokenise(cl.l, &chroma.TokeniseOptions{State: "root"}, string(src))
	if err != nil {
		return nil, err
	}
	if !bytes.HasSuffix(src, _newline) {
		tokens = trimNewline(tokens)
	}
	return tokens, nil
}

var _newline = []byte("\n")

// trimNewline removes a single trailing "\n" from the token stream.
func trimNewline(tokens []chroma.Token) []chroma.Token {
	for i := len(tokens) - 1; i >= 0; i-- {
		v := tokens[i].Value
		if len(v) == 0 {
			continue
		}
		if !strings.HasSuffix(v, "\n") {
			break
		}
		tokens[i].Value = v[:len(v)-1]
		if len(tokens[i].Value) == 0 {
			tokens = append(tokens[:i], tokens[i+1:]...)
		}
		break
	}
	return tokens
}

// LexerFor returns a Lexer for the named language.
//
// The language may be a Chroma lexer name or alias ("go", "golang"),
// or a file extension ("py").
// Unknown languages get [PlainLexer].
func LexerFor(language string) Lexer {
	l := lexers.Get(language)
	if l == nil {
		return PlainLexer
	}
	return &chromaLexer{l: chroma.Coalesce(l)}
}

// Lex tokenizes code in the named language.
//
// Lex does not fail.
// If the lexer reports an error, the returned block holds
// an [ErrorSpan] followed by the source as plain text.
func Lex(code, language string) *Code {
	src := []byte(code)
	tokens, err := LexerFor(language).Lex(src)
	if err != nil {
		return &Code{
			Spans: []Span{
				&ErrorSpan{Msg: "Unable to highlight " + language, Err: err},
				&TextSpan{Text: src},
			},
		}
	}
	return &Code{
		Spans: []Span{&TokenSpan{Tokens: tokens}},
	}
}
