package argv

import "strings"

// Classify walks raw tokens left to right and emits one classified
// Argument per parameter or option, and one per character of each flag
// cluster. It is total: no token is rejected, the worst case is a
// parameter. Capturing folds the following token into the preceding
// record, so the output is never longer than the input.
func Classify(tokens []string, cfg Config) []Argument {
	out := make([]Argument, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch cfg.PrefixLen(tok) {
		case 2:
			name := tok[2:]
			if next, ok := peek(tokens, i); ok && cfg.AllowsCapture(tok) && !prefixed(cfg, next) {
				out = append(out, NewOptionCapture(name, next))
				i++ // the captured token is consumed, not emitted
			} else {
				out = append(out, NewOption(name))
			}
		case 1:
			body := tok[1:]
			if cfg.AllowNegativeNumbers && numberLike(body) {
				out = append(out, NewParameter(tok))
				continue
			}
			captured := false
			for j := 0; j < len(body); j++ {
				ch := body[j]
				next, ok := peek(tokens, i)
				if !captured && ok && cfg.AllowsCapture(string([]byte{ch})) && !prefixed(cfg, next) {
					out = append(out, NewFlagCapture(ch, next))
					i++
					captured = true
					if cfg.Cluster == ClusterAbandonRest {
						break
					}
					continue
				}
				out = append(out, NewFlag(ch))
			}
		default:
			out = append(out, NewParameter(tok))
		}
	}

	return out
}

func peek(tokens []string, i int) (string, bool) {
	if i+1 < len(tokens) {
		return tokens[i+1], true
	}
	return "", false
}

// prefixed reports whether tok begins with a delimiter character. A
// prefixed next token blocks capture so that one option or flag never
// swallows the next one.
func prefixed(cfg Config, tok string) bool {
	return tok != "" && cfg.IsDelim(tok[0])
}

// numberLike reports whether a prefix-stripped token body reads as a
// number: all digits and '.', or anything carrying a 0x hex marker. The
// marker alone is enough; the digits after it are not validated.
func numberLike(body string) bool {
	if strings.HasPrefix(body, "0x") {
		return true
	}
	for i := 0; i < len(body); i++ {
		if ch := body[i]; (ch < '0' || ch > '9') && ch != '.' {
			return false
		}
	}
	return true
}
