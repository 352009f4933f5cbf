package richtext

import (
	"testing"
)

func TestDecodeEntity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		next  int
	}{
		{"named lt", "&lt;", "<", 4},
		{"named nbsp", "&nbsp;x", " ", 6},
		{"named comparison", "&le;", "≤", 4},
		{"numeric decimal", "&#65;", "A", 5},
		{"numeric apostrophe", "&#39;", "'", 5},
		{"numeric hex", "&#x41;", "A", 6},
		{"numeric hex lowercase", "&#x2764;", "❤", 8},
		{"invalid numeric", "&#xD800;", "&#xD800;", 8},
		{"overflow numeric", "&#99999999999;", "&#99999999999;", 14},
		{"unknown named", "&foobar;", "&foobar;", 8},
		{"malformed space", "&amp x", "&amp", 4},
		{"malformed tag", "&lt<b>", "&lt", 3},
		{"bare ampersand at end", "&", "&", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, next := decodeEntity([]rune(tt.input), 0)
			if got != tt.want {
				t.Errorf("decodeEntity(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if next != tt.next {
				t.Errorf("decodeEntity(%q) next = %d, want %d", tt.input, next, tt.next)
			}
		})
	}
}

// Decoding is idempotent: text that comes out of the decoder passes through
// unchanged if fed back in.
func TestDecodeIdempotent(t *testing.T) {
	for _, in := range []string{"&foobar;", "&amp x", "&#xD800;", "&"} {
		once, _ := decodeEntity([]rune(in), 0)
		twice, _ := decodeEntity([]rune(once), 0)
		if twice != once {
			t.Errorf("decode(%q): first %q, second %q", in, once, twice)
		}
	}
}
