package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind identifies the role of a Token.
type TokenKind int

const (
	// Literal is plain text copied to the output.
	Literal TokenKind = iota
	// Open is an opening tag candidate such as [bold red].
	Open
	// Close is a closing tag candidate such as [/bold red].
	Close
)

func (k TokenKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Open:
		return "open"
	case Close:
		return "close"
	default:
		return "unknown"
	}
}

// Token is one lexical unit of markup text.
//
// For Literal tokens Text is the text itself. For Open tokens it is the raw
// bracket interior, for Close tokens the interior minus the leading slash.
type Token struct {
	Kind TokenKind
	Text string
}

// Raw returns the source text the token was scanned from.
func (t Token) Raw() string {
	switch t.Kind {
	case Open:
		return "[" + t.Text + "]"
	case Close:
		return "[/" + t.Text + "]"
	default:
		return t.Text
	}
}

// Spec splits the tag body into its style tokens.
func (t Token) Spec() []string {
	if t.Kind == Literal {
		return nil
	}
	return strings.Fields(t.Text)
}

const esc = '\x1b'

// Tokenize scans text into literal runs and tag candidates.
//
// A '[' starts a tag only when followed by a letter, '/' or '#', and never
// when it directly follows ESC; escape sequences such as ESC[1m therefore
// remain literal. A '[' without a later ']' leaves the rest of the input as
// literal text.
func Tokenize(text string) []Token {
	var tokens []Token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, Token{Kind: Literal, Text: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(text) {
		c := text[i]
		if c != '[' || !startsTag(text, i) {
			lit.WriteByte(c)
			i++
			continue
		}

		end := strings.IndexByte(text[i+1:], ']')
		if end < 0 {
			lit.WriteString(text[i:])
			break
		}

		interior := text[i+1 : i+1+end]
		flush()
		if body, ok := strings.CutPrefix(interior, "/"); ok {
			tokens = append(tokens, Token{Kind: Close, Text: body})
		} else {
			tokens = append(tokens, Token{Kind: Open, Text: interior})
		}
		i += end + 2
	}
	flush()

	return tokens
}

// startsTag reports whether the '[' at text[i] may open a tag.
func startsTag(text string, i int) bool {
	if i > 0 && text[i-1] == esc {
		return false
	}
	if i+1 >= len(text) {
		return false
	}
	next := text[i+1]
	if next == '/' || next == '#' {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i+1:])
	return unicode.IsLetter(r)
}
