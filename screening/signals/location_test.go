package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hazardwatch/hazardwatch/screening/engine"
)

func TestLocationSignalNullIsland(t *testing.T) {
	assert := assert.New(t)

	sub := engine.TestSubmission()
	sub.Location = engine.GeoPoint{Lat: 0, Lon: 0}
	c := testContext(sub)
	assert.NoError(LocationSignal(c))
	res := onlyResult(t, c)
	assert.Equal(1.0, res.Risk)
	assert.Equal(1.0, res.Confidence)
	assert.True(c.RejectedOutright())
}

func TestLocationSignalOutsideRegion(t *testing.T) {
	assert := assert.New(t)

	sub := engine.TestSubmission()
	sub.Location = engine.GeoPoint{Lat: 48.8566, Lon: 2.3522}
	c := testContext(sub)
	assert.NoError(LocationSignal(c))
	res := onlyResult(t, c)
	assert.GreaterOrEqual(res.Risk, 0.8)
	assert.Contains(res.Reasons, "location outside supported region")
	assert.False(c.RejectedOutright())
}

func TestLocationSignalFakeCoordinates(t *testing.T) {
	assert := assert.New(t)

	sub := engine.TestSubmission()
	sub.Location = engine.GeoPoint{Lat: 37.7749, Lon: -122.4194}
	c := testContext(sub)
	assert.NoError(LocationSignal(c))
	res := onlyResult(t, c)
	// outside the region and a known tutorial default
	assert.GreaterOrEqual(res.Risk, 1.0)
	assert.GreaterOrEqual(res.Confidence, 0.8)
}

func TestLocationSignalExcessPrecision(t *testing.T) {
	assert := assert.New(t)

	sub := engine.TestSubmission()
	sub.Location = engine.GeoPoint{Lat: 42.35051234567, Lon: -71.1054}
	c := testContext(sub)
	assert.NoError(LocationSignal(c))
	res := onlyResult(t, c)
	assert.Contains(res.Reasons, "implausibly precise coordinates")
}

func TestLocationSignalClean(t *testing.T) {
	assert := assert.New(t)

	c := testContext(engine.TestSubmission())
	assert.NoError(LocationSignal(c))
	res := onlyResult(t, c)
	assert.Equal(0.0, res.Risk)
}
