package library

// Three orderings live here and are deliberately kept apart:
//   - SortFilenames orders page files inside a chapter by their embedded number.
//   - SortEntries orders browse results: collections first, then chapters.
//   - SortSiblingNames orders chapters when looking for neighbours.

import (
	"math/big"
	"sort"
	"unicode"

	"github.com/vrsandeep/mango-reader/internal/models"
)

// digitSymbols holds runes that are digits with a value but not decimal
// digits: superscripts, subscripts, circled and similar forms. A page key
// cannot be read from a stem that contains one.
var digitSymbols = &unicode.RangeTable{
	LatinOffset: 2,
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10a40, Hi: 0x10a43, Stride: 1},
		{Lo: 0x10e60, Hi: 0x10e68, Stride: 1},
		{Lo: 0x11052, Hi: 0x1105a, Stride: 1},
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
}

// decimalValue returns the value of a decimal digit rune from any script.
// Decimal digits are encoded in runs of ten starting at zero, so the value
// is the offset from the start of the run.
func decimalValue(r rune) byte {
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return byte((r - start) % 10)
}

// pageKey extracts the numeric sort key of a page file: every decimal digit
// of the stem, in any script, concatenated in order. A stem without digits
// has key 0. ok is false when the stem holds a digit symbol such as "²".
func pageKey(name string) (key *big.Int, ok bool) {
	digits := make([]byte, 0, len(name))
	for _, r := range stem(name) {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, byte(r))
		case unicode.IsDigit(r):
			digits = append(digits, '0'+decimalValue(r))
		case unicode.Is(digitSymbols, r):
			return nil, false
		}
	}
	key = new(big.Int)
	if len(digits) == 0 {
		return key, true
	}
	if _, parsed := key.SetString(string(digits), 10); !parsed {
		return nil, false
	}
	return key, true
}

// SortFilenames orders page filenames in place. If every name yields a
// numeric key the sort is stable by key, so names sharing a key keep their
// listing order. Otherwise the whole set is sorted lexicographically.
func SortFilenames(names []string) {
	keys := make(map[string]*big.Int, len(names))
	for _, n := range names {
		k, ok := pageKey(n)
		if !ok {
			sort.Strings(names)
			return
		}
		keys[n] = k
	}
	sort.SliceStable(names, func(i, j int) bool {
		return keys[names[i]].Cmp(keys[names[j]]) < 0
	})
}

// SortEntries orders browse entries: collections before chapters, each
// group by name.
func SortEntries(entries []models.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ci := entries[i].Type == models.KindChapter
		cj := entries[j].Type == models.KindChapter
		if ci != cj {
			return !ci
		}
		return entries[i].Name < entries[j].Name
	})
}

// SortSiblingNames orders chapter names for neighbour lookup.
func SortSiblingNames(names []string) {
	sort.Strings(names)
}
