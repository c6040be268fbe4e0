// Package braille holds the closed Grade-1 alphabet table mapping letters
// to six-dot cell patterns.
package braille

import "fmt"

// Pattern is a set of raised dots in one braille cell. Bit i-1 is dot i.
type Pattern uint8

const (
	Dot1 Pattern = 1 << iota
	Dot2
	Dot3
	Dot4
	Dot5
	Dot6
)

// NumDots is the number of pins in one cell.
const NumDots = 6

// alphabet is the uncontracted Grade-1 encoding, index 0 = A .. 25 = Z.
var alphabet = [26]Pattern{
	Dot1,                             // A
	Dot1 | Dot2,                      // B
	Dot1 | Dot4,                      // C
	Dot1 | Dot4 | Dot5,               // D
	Dot1 | Dot5,                      // E
	Dot1 | Dot2 | Dot4,               // F
	Dot1 | Dot2 | Dot4 | Dot5,        // G
	Dot1 | Dot2 | Dot5,               // H
	Dot2 | Dot4,                      // I
	Dot2 | Dot4 | Dot5,               // J
	Dot1 | Dot3,                      // K
	Dot1 | Dot2 | Dot3,               // L
	Dot1 | Dot3 | Dot4,               // M
	Dot1 | Dot3 | Dot4 | Dot5,        // N
	Dot1 | Dot3 | Dot5,               // O
	Dot1 | Dot2 | Dot3 | Dot4,        // P
	Dot1 | Dot2 | Dot3 | Dot4 | Dot5, // Q
	Dot1 | Dot2 | Dot3 | Dot5,        // R
	Dot2 | Dot3 | Dot4,               // S
	Dot2 | Dot3 | Dot4 | Dot5,        // T
	Dot1 | Dot3 | Dot6,               // U
	Dot1 | Dot2 | Dot3 | Dot6,        // V
	Dot2 | Dot4 | Dot5 | Dot6,        // W
	Dot1 | Dot3 | Dot4 | Dot6,        // X
	Dot1 | Dot3 | Dot4 | Dot5 | Dot6, // Y
	Dot1 | Dot3 | Dot5 | Dot6,        // Z
}

// PatternFor returns the cell pattern for letter 1 (A) through 26 (Z).
func PatternFor(letter int) (Pattern, error) {
	if letter < 1 || letter > len(alphabet) {
		return 0, fmt.Errorf("braille: letter %d out of range [1,26]", letter)
	}
	return alphabet[letter-1], nil
}

// Has reports whether dot d (Dot1..Dot6) is raised in p.
func (p Pattern) Has(d Pattern) bool { return p&d != 0 }

// Dot returns the mask for dot number n (1..6).
func Dot(n int) Pattern { return 1 << (n - 1) }

// String renders the raised dot numbers, e.g. "dots 1-3-5". Used in log lines.
func (p Pattern) String() string {
	if p == 0 {
		return "blank"
	}
	s := "dots "
	first := true
	for n := 1; n <= NumDots; n++ {
		if p.Has(Dot(n)) {
			if !first {
				s += "-"
			}
			s += string(rune('0' + n))
			first = false
		}
	}
	return s
}

// Letter returns the letter name for index 1..26, or "?" out of range.
func Letter(n int) string {
	if n < 1 || n > 26 {
		return "?"
	}
	return string(rune('A' + n - 1))
}
