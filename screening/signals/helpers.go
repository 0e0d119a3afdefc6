package signals

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// based on: https://stackoverflow.com/a/48769624, with no trailing period allowed
var urlRegex = regexp.MustCompile(`(?:(?:https?|ftp):\/\/)?[\w/\-?=%.]+\.[\w/\-&?=%.]*[\w/\-&?=%]+`)

func ExtractTextURLs(raw string) []string {
	return urlRegex.FindAllString(raw, -1)
}

var currencyRegex = regexp.MustCompile(`(?i)([$€£]\s?\d+|\d+\s?(?:dollars|usd|eur|gbp))`)

func ContainsCurrencyAmount(raw string) bool {
	return currencyRegex.MatchString(raw)
}

// HasImmediateRepetition reports whether the text contains the same
// character three or more times in a row, or the same word three or more
// times in a row. RE2 has no backreferences, so this is a manual scan.
func HasImmediateRepetition(text string) bool {
	runs := 1
	var prev rune
	for i, r := range text {
		if i > 0 && r == prev {
			runs++
			if runs >= 3 && !unicode.IsSpace(r) {
				return true
			}
		} else {
			runs = 1
		}
		prev = r
	}
	words := strings.Fields(strings.ToLower(text))
	runs = 1
	for i := 1; i < len(words); i++ {
		if words[i] == words[i-1] {
			runs++
			if runs >= 3 {
				return true
			}
		} else {
			runs = 1
		}
	}
	return false
}

// UppercaseRatio returns the fraction of letters which are upper-case, and
// the total letter count.
func UppercaseRatio(text string) (float64, int) {
	var upper, letters int
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return 0, 0
	}
	return float64(upper) / float64(letters), letters
}

// DecimalDigits counts digits after the decimal point in the shortest
// decimal representation of v. Coordinates carrying more than six are
// implausibly precise for a phone GPS fix.
func DecimalDigits(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	idx := strings.IndexByte(s, '.')
	if idx < 0 {
		return 0
	}
	return len(s) - idx - 1
}

var cameraDefaultRegex = regexp.MustCompile(`(?i)^(img|dsc|dcim|pxl|photo|screenshot)[-_ ]?\d+`)

// IsCameraDefaultFilename matches generic camera-roll names like IMG_1234.
func IsCameraDefaultFilename(name string) bool {
	return cameraDefaultRegex.MatchString(name)
}
