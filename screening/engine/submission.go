package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// MediaRef describes a single uploaded evidence file. The blob itself lives
// in external storage; screening only sees this metadata.
type MediaRef struct {
	URL       string `json:"url" validate:"required"`
	Filename  string `json:"filename"`
	MimeType  string `json:"mime_type" validate:"required"`
	SizeBytes int64  `json:"size_bytes" validate:"gte=0"`
}

// Submission is a user-submitted hazard report as handed to the screening
// engine. It is transient: owned by the request that created it, never
// persisted by this subsystem.
type Submission struct {
	Title       string      `json:"title" validate:"required,max=200"`
	Description string      `json:"description" validate:"required,max=5000"`
	Category    string      `json:"category" validate:"required"`
	Location    GeoPoint    `json:"location"`
	Severity    int         `json:"severity" validate:"gte=1,lte=5"`
	Media       []MediaRef  `json:"media" validate:"dive"`
	Area        []GeoPoint  `json:"area,omitempty" validate:"omitempty,min=3,dive"`
	SubmittedAt time.Time   `json:"submitted_at"`
}

// CombinedText returns the title and description joined for text analysis.
func (s *Submission) CombinedText() string {
	return strings.TrimSpace(s.Title + " " + s.Description)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError reports one malformed submission field. Validation happens
// before any scoring; a failed submission is never scored.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid submission field %s: %s", e.Field, e.Message)
}

// ValidateSubmission fails fast on malformed input, returning field-level
// detail for every violation found.
func ValidateSubmission(sub *Submission) []*ValidationError {
	err := validate.Struct(sub)
	if err == nil {
		return nil
	}
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return []*ValidationError{{Field: "submission", Message: err.Error()}}
	}
	out := make([]*ValidationError, 0, len(invalid))
	for _, fe := range invalid {
		out = append(out, &ValidationError{
			Field:   fe.Namespace(),
			Message: fmt.Sprintf("failed %q constraint", fe.Tag()),
		})
	}
	return out
}
