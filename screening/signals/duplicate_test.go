package signals

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hazardwatch/hazardwatch/screening/engine"
)

func TestDuplicateSignalHeuristic(t *testing.T) {
	assert := assert.New(t)

	sub := engine.TestSubmission()
	sub.Title = "Hazard"
	c := testContext(sub)
	c.Dupes = TitleHeuristicChecker{}
	assert.NoError(DuplicateSignal(c))
	res := onlyResult(t, c)
	assert.GreaterOrEqual(res.Risk, 0.3)
	assert.NotEmpty(res.Reasons)

	// a descriptive title passes
	c2 := testContext(engine.TestSubmission())
	c2.Dupes = TitleHeuristicChecker{}
	assert.NoError(DuplicateSignal(c2))
	assert.Equal(0.0, onlyResult(t, c2).Risk)
}

type failingChecker struct{}

func (failingChecker) FindMatches(ctx context.Context, sub *engine.Submission, window time.Duration) ([]engine.DupeMatch, error) {
	return nil, fmt.Errorf("store unavailable")
}

func TestDuplicateSignalErrors(t *testing.T) {
	assert := assert.New(t)

	c := testContext(engine.TestSubmission())
	c.Dupes = failingChecker{}
	assert.Error(DuplicateSignal(c))

	// no checker configured is also an error, degraded by the engine
	c2 := testContext(engine.TestSubmission())
	assert.Error(DuplicateSignal(c2))
}

func TestDefaultSignals(t *testing.T) {
	assert := assert.New(t)

	set := DefaultSignals()
	assert.Len(set.Signals, 4)
}
