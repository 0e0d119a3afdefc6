package keyword

import "strings"

// Solicitation and commercial spam phrases which have no business appearing
// in a hazard report. Matched case-insensitively as substrings of the
// combined title and description.
var SpamPhrases = []string{
	"buy now",
	"click here",
	"limited time",
	"act now",
	"free money",
	"make money fast",
	"work from home",
	"earn cash",
	"visit my",
	"check out my",
	"follow me",
	"subscribe",
	"promo code",
	"discount code",
}

// Terms which indicate abusive rather than informative content. This list is
// deliberately short and unambiguous; moderation policy lives in the term
// lists, not the matching code.
var ProfanityTokens = []string{
	"fuck",
	"shit",
	"bitch",
	"asshole",
	"bastard",
	"dick",
	"cunt",
}

// Vocabulary expected in genuine hazard reports. A report mentioning none of
// these is suspicious but not damning on its own.
var HazardVocabulary = []string{
	"hazard",
	"danger",
	"dangerous",
	"broken",
	"damaged",
	"blocked",
	"flooded",
	"flooding",
	"ice",
	"icy",
	"snow",
	"debris",
	"pothole",
	"sinkhole",
	"crack",
	"cracked",
	"fallen",
	"tree",
	"wire",
	"power",
	"sidewalk",
	"road",
	"street",
	"intersection",
	"crosswalk",
	"bridge",
	"construction",
	"spill",
	"leak",
	"fire",
	"smoke",
	"collapse",
	"unsafe",
	"warning",
	"caution",
	"injury",
	"accident",
	"obstruction",
	"erosion",
	"landslide",
}

// Overused generic titles; a cheap stand-in for real duplicate detection
// (see the duplicate signal for the injectable replacement).
var GenericTitles = []string{
	"hazard",
	"danger",
	"problem",
	"issue",
	"warning",
	"alert",
	"broken",
	"test",
}

// Filename fragments common in test, placeholder, and spam uploads.
var SuspiciousFilenameTokens = []string{
	"test",
	"sample",
	"fake",
	"spam",
	"placeholder",
	"dummy",
}

// Checks the lower-cased text for any of the given phrases, returning matches in list order.
func MatchPhrases(text string, phrases []string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			out = append(out, p)
		}
	}
	return out
}
