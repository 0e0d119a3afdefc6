package signals

import (
	"fmt"

	"github.com/hazardwatch/hazardwatch/screening/engine"
	"github.com/hazardwatch/hazardwatch/screening/keyword"
)

var _ engine.SignalFunc = TextSignal

// TextSignal scans the title and description for spam markers, profanity,
// and structural oddities. Each distinct spam match class contributes +0.3;
// profanity is weighted harder at +0.4 per term.
func TextSignal(c *engine.SubmissionContext) error {
	text := c.Submission.CombinedText()
	res := engine.SignalResult{Name: engine.SignalText, Confidence: 0.5}

	spamClasses := 0
	if phrases := keyword.MatchPhrases(text, keyword.SpamPhrases); len(phrases) > 0 {
		spamClasses++
		res.Reasons = append(res.Reasons, fmt.Sprintf("solicitation phrasing: %s", phrases[0]))
	}
	if urls := ExtractTextURLs(text); len(urls) > 0 {
		spamClasses++
		res.Reasons = append(res.Reasons, fmt.Sprintf("contains URL: %s", urls[0]))
	}
	if ContainsCurrencyAmount(text) {
		spamClasses++
		res.Reasons = append(res.Reasons, "mentions a currency amount")
	}
	if spamClasses > 0 {
		res.Risk += 0.3 * float64(spamClasses)
		if res.Confidence < 0.8 {
			res.Confidence = 0.8
		}
	}

	toks := keyword.TokenizeText(text)
	for _, term := range keyword.MatchTokensInSet(toks, keyword.ProfanityTokens) {
		res.Risk += 0.4
		if res.Confidence < 0.9 {
			res.Confidence = 0.9
		}
		res.Reasons = append(res.Reasons, fmt.Sprintf("abusive language: %s", term))
	}

	if n := len(text); n < 20 {
		res.Risk += 0.2
		res.Reasons = append(res.Reasons, "text too short to describe a hazard")
	} else if n > 1000 {
		res.Risk += 0.2
		res.Reasons = append(res.Reasons, "text unusually long")
	}

	if HasImmediateRepetition(text) {
		res.Risk += 0.5
		res.Reasons = append(res.Reasons, "repeated characters or words")
	}

	if ratio, letters := UppercaseRatio(text); letters > 10 && ratio > 0.5 {
		res.Risk += 0.3
		res.Reasons = append(res.Reasons, "excessive uppercase")
	}

	if !keyword.AnyTokenInSet(toks, keyword.HazardVocabulary) {
		res.Risk += 0.2
		res.Reasons = append(res.Reasons, "no hazard-related vocabulary")
	}

	c.AddSignalResult(res)
	return nil
}
