package markup

import (
	"fmt"
	"strconv"
	"strings"
)

// Reset clears every SGR attribute.
const Reset = "\x1b[0m"

func sgr(code int) string {
	return "\x1b[" + strconv.Itoa(code) + "m"
}

// styles maps static tokens to their escape sequence. It is built once and
// only read afterwards.
var styles = buildStyles()

func buildStyles() map[string]string {
	m := map[string]string{
		// attributes
		"b":             sgr(1),
		"bold":          sgr(1),
		"dim":           sgr(2),
		"i":             sgr(3),
		"italic":        sgr(3),
		"u":             sgr(4),
		"underline":     sgr(4),
		"blink":         sgr(5),
		"inverse":       sgr(7),
		"reverse":       sgr(7),
		"hidden":        sgr(8),
		"s":             sgr(9),
		"strike":        sgr(9),
		"strikethrough": sgr(9),
		"overline":      sgr(53),
	}

	colors := []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
	for n, name := range colors {
		m[name] = sgr(30 + n)
		m["bright_"+name] = sgr(90 + n)
		m["on_"+name] = sgr(40 + n)
		m["on_bright_"+name] = sgr(100 + n)
	}

	for _, grey := range []string{"grey", "gray"} {
		m[grey] = m["bright_black"]
		m["on_"+grey] = m["on_bright_black"]
	}

	return m
}

// ResolveToken returns the escape sequence for a single style token.
func ResolveToken(token string) (string, bool) {
	if code, ok := styles[token]; ok {
		return code, true
	}

	background := false
	rest := token
	if after, ok := strings.CutPrefix(token, "on_"); ok {
		background = true
		rest = after
	}
	layer := 38
	if background {
		layer = 48
	}

	if arg, ok := call(rest, "color"); ok {
		n, ok := channel(arg)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("\x1b[%d;5;%dm", layer, n), true
	}

	if arg, ok := call(rest, "rgb"); ok {
		parts := strings.Split(arg, ",")
		if len(parts) != 3 {
			return "", false
		}
		var rgb [3]int
		for n, part := range parts {
			v, ok := channel(part)
			if !ok {
				return "", false
			}
			rgb[n] = v
		}
		return truecolor(layer, rgb), true
	}

	if hex, ok := strings.CutPrefix(rest, "#"); ok {
		rgb, ok := parseHex(hex)
		if !ok {
			return "", false
		}
		return truecolor(layer, rgb), true
	}

	return "", false
}

// Resolve resolves every token of a compound tag. It fails as a whole when
// any token does not resolve, and for an empty tag.
func Resolve(tokens []string) ([]string, bool) {
	if len(tokens) == 0 {
		return nil, false
	}
	codes := make([]string, 0, len(tokens))
	for _, token := range tokens {
		code, ok := ResolveToken(token)
		if !ok {
			return nil, false
		}
		codes = append(codes, code)
	}
	return codes, true
}

// call extracts the argument of name(arg).
func call(token, name string) (string, bool) {
	inner, ok := strings.CutPrefix(token, name+"(")
	if !ok {
		return "", false
	}
	return strings.CutSuffix(inner, ")")
}

// channel parses a decimal value in 0..255.
func channel(s string) (int, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

func parseHex(hex string) ([3]int, bool) {
	var rgb [3]int
	if len(hex) != 6 {
		return rgb, false
	}
	for n := range rgb {
		v, err := strconv.ParseUint(hex[2*n:2*n+2], 16, 8)
		if err != nil {
			return rgb, false
		}
		rgb[n] = int(v)
	}
	return rgb, true
}

func truecolor(layer int, rgb [3]int) string {
	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", layer, rgb[0], rgb[1], rgb[2])
}
