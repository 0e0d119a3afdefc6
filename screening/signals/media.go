package signals

import (
	"fmt"
	"strings"

	"github.com/hazardwatch/hazardwatch/screening/engine"
	"github.com/hazardwatch/hazardwatch/screening/keyword"
)

var _ engine.SignalFunc = MediaSignal

// MediaSignal checks evidence attachments. The product requires photographic
// evidence, so an empty media list is itself high risk.
func MediaSignal(c *engine.SubmissionContext) error {
	media := c.Submission.Media
	res := engine.SignalResult{Name: engine.SignalMedia, Confidence: 0.5}

	if len(media) == 0 {
		res.Risk = 0.8
		res.Confidence = 0.9
		res.Reasons = append(res.Reasons, "no photographic evidence attached")
		c.AddSignalResult(res)
		return nil
	}

	if len(media) > c.Config.MaxMediaCount {
		res.Risk += 0.3
		res.Reasons = append(res.Reasons, fmt.Sprintf("too many attachments (%d, max %d)", len(media), c.Config.MaxMediaCount))
	}

	for _, m := range media {
		if !strings.HasPrefix(m.MimeType, "image/") {
			res.Risk += 0.9
			if res.Confidence < 0.95 {
				res.Confidence = 0.95
			}
			res.Reasons = append(res.Reasons, fmt.Sprintf("non-image attachment: %s", m.MimeType))
			continue
		}
		if m.SizeBytes < c.Config.MediaMinBytes {
			res.Risk += 0.3
			res.Reasons = append(res.Reasons, fmt.Sprintf("attachment suspiciously small (%d bytes)", m.SizeBytes))
		} else if m.SizeBytes > c.Config.MediaMaxBytes {
			res.Risk += 0.3
			res.Reasons = append(res.Reasons, fmt.Sprintf("attachment suspiciously large (%d bytes)", m.SizeBytes))
		}
		nameToks := keyword.TokenizeText(strings.ReplaceAll(m.Filename, "_", " "))
		if matched := keyword.MatchTokensInSet(nameToks, keyword.SuspiciousFilenameTokens); len(matched) > 0 {
			res.Risk += 0.2
			res.Reasons = append(res.Reasons, fmt.Sprintf("suspicious filename: %s", m.Filename))
		} else if IsCameraDefaultFilename(m.Filename) {
			res.Risk += 0.1
			res.Reasons = append(res.Reasons, fmt.Sprintf("generic camera filename: %s", m.Filename))
		}
	}

	c.AddSignalResult(res)
	return nil
}
