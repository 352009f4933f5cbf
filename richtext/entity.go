package richtext

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// namedEntities is the fixed table of entities the problem service is known
// to emit. Anything else passes through verbatim so unfamiliar math entities
// don't corrupt problem text.
var namedEntities = map[string]string{
	"nbsp":   " ",
	"lt":     "<",
	"gt":     ">",
	"amp":    "&",
	"quot":   "\"",
	"apos":   "'",
	"#39":    "'",
	"le":     "≤",
	"ge":     "≥",
	"ne":     "≠",
	"times":  "×",
	"minus":  "−",
	"mdash":  "—",
	"ndash":  "–",
	"hellip": "…",
}

// decodeEntity decodes the entity starting at rs[i] (which is '&') and
// returns the replacement text and the index of the next undecoded rune.
// A '<' or space before the terminating ';' marks the entity malformed and
// the partial text is returned literally, including the leading '&'.
func decodeEntity(rs []rune, i int) (string, int) {
	j := i + 1
	var name strings.Builder
	terminated := false
	for j < len(rs) {
		c := rs[j]
		if c == ';' {
			j++
			terminated = true
			break
		}
		if c == '<' || c == ' ' {
			break
		}
		name.WriteRune(c)
		j++
	}

	entity := name.String()
	if !terminated {
		return "&" + entity, j
	}

	if repl, ok := namedEntities[entity]; ok {
		return repl, j
	}

	if num, ok := strings.CutPrefix(entity, "#"); ok {
		var code uint64
		var err error
		if hex, isHex := strings.CutPrefix(num, "x"); isHex {
			code, err = strconv.ParseUint(hex, 16, 32)
		} else {
			code, err = strconv.ParseUint(num, 10, 32)
		}
		if err == nil && utf8.ValidRune(rune(code)) {
			return string(rune(code)), j
		}
	}

	// Unknown or invalid: pass through with delimiters intact.
	return "&" + entity + ";", j
}
