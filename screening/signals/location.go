package signals

import (
	"fmt"

	"github.com/hazardwatch/hazardwatch/screening/engine"
)

// Known fake or tutorial-default coordinates which show up in synthetic
// submissions. Compared with a small epsilon to absorb float formatting.
var fakeCoordinates = []engine.GeoPoint{
	{Lat: 1, Lon: 1},
	{Lat: 12.34, Lon: 56.78},
	{Lat: 37.7749, Lon: -122.4194},
	{Lat: 40.7128, Lon: -74.0060},
}

const coordEpsilon = 1e-6

func nearPoint(a, b engine.GeoPoint) bool {
	dLat := a.Lat - b.Lat
	dLon := a.Lon - b.Lon
	if dLat < 0 {
		dLat = -dLat
	}
	if dLon < 0 {
		dLon = -dLon
	}
	return dLat < coordEpsilon && dLon < coordEpsilon
}

var _ engine.SignalFunc = LocationSignal

// LocationSignal checks the report coordinates for plausibility. The null
// island point (0,0) is an unconditional rejection signal.
func LocationSignal(c *engine.SubmissionContext) error {
	loc := c.Submission.Location
	res := engine.SignalResult{Name: engine.SignalLocation, Confidence: 0.5}

	if loc.Lat == 0 && loc.Lon == 0 {
		res.Risk = 1.0
		res.Confidence = 1.0
		res.Reasons = append(res.Reasons, "location is exactly (0,0)")
		c.AddSignalResult(res)
		c.RejectSubmission()
		return nil
	}

	if !c.Config.Region.Contains(loc) {
		res.Risk += 0.8
		if res.Confidence < 0.7 {
			res.Confidence = 0.7
		}
		res.Reasons = append(res.Reasons, "location outside supported region")
	}

	for _, fake := range fakeCoordinates {
		if nearPoint(loc, fake) {
			res.Risk += 0.6
			if res.Confidence < 0.8 {
				res.Confidence = 0.8
			}
			res.Reasons = append(res.Reasons, fmt.Sprintf("location matches known test coordinates (%.4f,%.4f)", fake.Lat, fake.Lon))
			break
		}
	}

	if DecimalDigits(loc.Lat) > 6 || DecimalDigits(loc.Lon) > 6 {
		res.Risk += 0.3
		res.Reasons = append(res.Reasons, "implausibly precise coordinates")
	}

	c.AddSignalResult(res)
	return nil
}
