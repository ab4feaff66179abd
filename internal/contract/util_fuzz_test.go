package contract

import (
	"math"
	"testing"
)

// FuzzParseWindowList ensures arbitrary input never panics and that
// accepted lists only contain positive sizes.
func FuzzParseWindowList(f *testing.F) {
	f.Add("7,14,30")
	f.Add("")
	f.Add(" 1 ,2,")
	f.Add("0")
	f.Add("-3,7")
	f.Add("9999999999999999999")

	f.Fuzz(func(t *testing.T, s string) {
		windows, err := ParseWindowList(s)
		if err != nil {
			return
		}
		for _, w := range windows {
			if w < 1 {
				t.Errorf("ParseWindowList(%q) accepted non-positive size %d", s, w)
			}
		}
	})
}

// FuzzTrimBoundaryGaps ensures gap trimming never panics and never leaves
// a NaN in an accepted result.
func FuzzTrimBoundaryGaps(f *testing.F) {
	f.Add([]byte{0, 1, 2})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, raw []byte) {
		values := make([]float64, len(raw))
		for i, b := range raw {
			if b%5 == 0 {
				values[i] = math.NaN()
			} else {
				values[i] = float64(b)
			}
		}
		trimmed, err := trimBoundaryGaps(values)
		if err != nil {
			return
		}
		for i, v := range trimmed {
			if math.IsNaN(v) {
				t.Errorf("trimBoundaryGaps left NaN at %d", i)
			}
		}
	})
}
