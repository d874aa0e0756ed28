package markup

import "strings"

// Theme maps alias names to compound tag strings, e.g. "title": "bold cyan".
type Theme map[string]string

// Styler renders markup, optionally extending the built-in tokens with a
// theme. The zero value renders built-in tokens only. A Styler is safe for
// concurrent use as long as its theme is not modified.
type Styler struct {
	theme Theme
}

// NewStyler returns a Styler that also resolves the aliases of theme.
func NewStyler(theme Theme) *Styler {
	t := make(Theme, len(theme))
	for name, spec := range theme {
		t[name] = spec
	}
	return &Styler{theme: t}
}

var defaultStyler = &Styler{}

// Apply renders text with the built-in tokens.
func Apply(text string) string {
	return defaultStyler.Apply(text)
}

// Strip renders text with the built-in tokens but without escape codes.
func Strip(text string) string {
	return defaultStyler.Strip(text)
}

// Theme returns a copy of the styler's aliases.
func (s *Styler) Theme() Theme {
	t := make(Theme, len(s.theme))
	for name, spec := range s.theme {
		t[name] = spec
	}
	return t
}

// Resolve resolves a compound tag, consulting theme aliases for tokens that
// are not built in. Aliases expand one level only.
func (s *Styler) Resolve(tokens []string) ([]string, bool) {
	if len(tokens) == 0 {
		return nil, false
	}
	codes := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if code, ok := ResolveToken(token); ok {
			codes = append(codes, code)
			continue
		}
		spec, ok := s.theme[token]
		if !ok {
			return nil, false
		}
		expanded, ok := Resolve(strings.Fields(spec))
		if !ok {
			return nil, false
		}
		codes = append(codes, expanded...)
	}
	return codes, true
}

// Apply renders text into ANSI styled output.
func (s *Styler) Apply(text string) string {
	return s.render(text, true)
}

// Strip renders text the way Apply does but emits no escape codes:
// resolved tags disappear and unresolved ones stay literal.
func (s *Styler) Strip(text string) string {
	return s.render(text, false)
}

func (s *Styler) render(text string, color bool) string {
	if strings.IndexByte(text, '[') < 0 {
		return text
	}

	var out strings.Builder
	out.Grow(len(text))

	var stack [][]string
	closeTop := func() {
		stack = stack[:len(stack)-1]
		if !color {
			return
		}
		out.WriteString(Reset)
		for _, entry := range stack {
			writeCodes(&out, entry)
		}
	}

	for _, tok := range Tokenize(text) {
		switch tok.Kind {
		case Literal:
			out.WriteString(tok.Text)
		case Open:
			codes, ok := s.Resolve(tok.Spec())
			if !ok {
				out.WriteString(tok.Raw())
				continue
			}
			stack = append(stack, codes)
			if color {
				writeCodes(&out, codes)
			}
		case Close:
			if _, ok := s.Resolve(tok.Spec()); !ok || len(stack) == 0 {
				out.WriteString(tok.Raw())
				continue
			}
			closeTop()
		}
	}

	for len(stack) > 0 {
		closeTop()
	}

	return out.String()
}

func writeCodes(out *strings.Builder, codes []string) {
	for _, code := range codes {
		out.WriteString(code)
	}
}
