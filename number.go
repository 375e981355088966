package hourei

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	titleNumRe = regexp.MustCompile(`第([一二三四五六七八九十百千万壱弐参拾]+|[0-9]+)`)
	textNumRe  = regexp.MustCompile(`[0-9]+`)
)

// kanjiDigits maps single kanji numerals (including the formal 大字 forms
// used in older promulgation numbers) to their values.
var kanjiDigits = map[rune]int{
	'一': 1, '二': 2, '三': 3, '四': 4, '五': 5,
	'六': 6, '七': 7, '八': 8, '九': 9,
	'壱': 1, '弐': 2, '参': 3,
}

// NumberFromTitle extracts the ordinal from a division title such as
// 第三章, 第2節 or 第十二条. Returns false when the title carries no
// ordinal or the numeral is outside the supported range (1-99).
func NumberFromTitle(title string) (int, bool) {
	m := titleNumRe.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	if n, err := strconv.Atoi(m[1]); err == nil {
		return n, true
	}
	return parseKanjiNumber(m[1])
}

// NumberFromText extracts the first ASCII integer from text, e.g. the
// paragraph ordinal out of "２" style markers that the API already renders
// as ASCII digits.
func NumberFromText(text string) (int, bool) {
	m := textNumRe.FindString(text)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseKanjiNumber converts kanji numerals up to 九十九. Division ordinals
// in practice never exceed two digits, so 百 and above are rejected.
func parseKanjiNumber(s string) (int, bool) {
	s = strings.ReplaceAll(s, "拾", "十")

	runes := []rune(s)
	if !strings.ContainsRune(s, '十') {
		if len(runes) == 1 {
			n, ok := kanjiDigits[runes[0]]
			return n, ok
		}
		return 0, false
	}

	if s == "十" {
		return 10, true
	}

	left, right, _ := strings.Cut(s, "十")
	tens := 1
	if left != "" {
		lr := []rune(left)
		if len(lr) != 1 {
			return 0, false
		}
		n, ok := kanjiDigits[lr[0]]
		if !ok {
			return 0, false
		}
		tens = n
	}
	units := 0
	if right != "" {
		rr := []rune(right)
		if len(rr) != 1 {
			return 0, false
		}
		n, ok := kanjiDigits[rr[0]]
		if !ok {
			return 0, false
		}
		units = n
	}
	return tens*10 + units, true
}
