package unicodeprops

import "strings"

// asciiNames backs NameToCodePoint/NameOf for \N{...} escapes and the
// "na" property. This is a compact, hand-curated table covering the
// printable ASCII characters, the NULL/TAB/LINE FEED/CARRIAGE RETURN
// controls, and a few Latin-1 Supplement characters rather than the
// full Unicode Character
// Database — unknown names fail with an error, exactly as a full
// database lookup would for names it did not recognise.
var asciiNames = map[string]rune{
	"NULL":                       0x0000,
	"TAB":                        0x0009,
	"LINE FEED":                  0x000A,
	"CARRIAGE RETURN":            0x000D,
	"SPACE":                      0x0020,
	"EXCLAMATION MARK":           0x0021,
	"QUOTATION MARK":             0x0022,
	"NUMBER SIGN":                0x0023,
	"DOLLAR SIGN":                0x0024,
	"PERCENT SIGN":                0x0025,
	"AMPERSAND":                  0x0026,
	"APOSTROPHE":                 0x0027,
	"LEFT PARENTHESIS":           0x0028,
	"RIGHT PARENTHESIS":          0x0029,
	"ASTERISK":                   0x002A,
	"PLUS SIGN":                  0x002B,
	"COMMA":                      0x002C,
	"HYPHEN-MINUS":               0x002D,
	"FULL STOP":                  0x002E,
	"SOLIDUS":                    0x002F,
	"DIGIT ZERO":                 0x0030,
	"DIGIT ONE":                  0x0031,
	"DIGIT TWO":                  0x0032,
	"DIGIT THREE":                0x0033,
	"DIGIT FOUR":                 0x0034,
	"DIGIT FIVE":                 0x0035,
	"DIGIT SIX":                  0x0036,
	"DIGIT SEVEN":                0x0037,
	"DIGIT EIGHT":                0x0038,
	"DIGIT NINE":                 0x0039,
	"COLON":                      0x003A,
	"SEMICOLON":                  0x003B,
	"LESS-THAN SIGN":             0x003C,
	"EQUALS SIGN":                0x003D,
	"GREATER-THAN SIGN":          0x003E,
	"QUESTION MARK":              0x003F,
	"COMMERCIAL AT":              0x0040,
	"LEFT SQUARE BRACKET":        0x005B,
	"REVERSE SOLIDUS":            0x005C,
	"RIGHT SQUARE BRACKET":       0x005D,
	"CIRCUMFLEX ACCENT":          0x005E,
	"LOW LINE":                   0x005F,
	"GRAVE ACCENT":               0x0060,
	"LEFT CURLY BRACKET":         0x007B,
	"VERTICAL LINE":              0x007C,
	"RIGHT CURLY BRACKET":        0x007D,
	"TILDE":                      0x007E,
	"NO-BREAK SPACE":             0x00A0,
	"INVERTED EXCLAMATION MARK":  0x00A1,
	"CENT SIGN":                  0x00A2,
	"POUND SIGN":                 0x00A3,
	"COPYRIGHT SIGN":             0x00A9,
	"DEGREE SIGN":                0x00B0,
	"MICRO SIGN":                 0x00B5,
	"LATIN SMALL LETTER A":       0x0061,
	"LATIN SMALL LETTER Z":       0x007A,
	"LATIN CAPITAL LETTER A":     0x0041,
	"LATIN CAPITAL LETTER Z":     0x005A,
	"LATIN SMALL LETTER SHARP S": 0x00DF,
	"LATIN SMALL LETTER O WITH DIAERESIS":   0x00F6,
	"LATIN CAPITAL LETTER O WITH DIAERESIS": 0x00D6,
}

var codePointToName map[rune]string

func init() {
	codePointToName = make(map[rune]string, len(asciiNames))
	for name, cp := range asciiNames {
		codePointToName[cp] = name
	}
	// Fill in the contiguous Latin letter ranges so every ASCII letter
	// has a name, not just the two endpoints recorded above.
	for r := rune('A'); r <= 'Z'; r++ {
		name := "LATIN CAPITAL LETTER " + string(r)
		asciiNames[name] = r
		codePointToName[r] = name
	}
	for r := rune('a'); r <= 'z'; r++ {
		name := "LATIN SMALL LETTER " + string(r-'a'+'A')
		asciiNames[name] = r
		codePointToName[r] = name
	}
	for d := rune('0'); d <= '9'; d++ {
		name := []string{"ZERO", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE"}[d-'0']
		asciiNames["DIGIT "+name] = d
		codePointToName[d] = "DIGIT " + name
	}
}

// NameToCodePoint resolves a Unicode character name to its code
// point, per this module's compact built-in table.
func NameToCodePoint(name string) (rune, bool) {
	cp, ok := asciiNames[strings.ToUpper(strings.TrimSpace(name))]
	return cp, ok
}

// NameOf returns the built-in name for cp, if any.
func NameOf(cp rune) (string, bool) {
	name, ok := codePointToName[cp]
	return name, ok
}

// cccTable is a small embedded Canonical_Combining_Class table: Go's
// standard library does not expose ccc values, so only a few
// combining-accent classes used by Latin diacritics (216, 220, 230,
// 232) are populated. Values outside the table, including class 0,
// resolve to an empty set rather than an error.
var cccTable = map[int][]rune{
	230: {0x0300, 0x0301, 0x0302, 0x0303, 0x0304, 0x0306, 0x0307, 0x0308, 0x030A, 0x030B, 0x030C},
	220: {0x0316, 0x0317, 0x0318, 0x0319},
	232: {0x0321, 0x0322},
	216: {0x0315},
}
