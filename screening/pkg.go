package screening

import (
	"github.com/hazardwatch/hazardwatch/screening/engine"
)

type Engine = engine.Engine
type ScreeningConfig = engine.ScreeningConfig
type ScreeningResult = engine.ScreeningResult
type Submission = engine.Submission
type MediaRef = engine.MediaRef
type GeoPoint = engine.GeoPoint
type SignalResult = engine.SignalResult
type RiskAssessment = engine.RiskAssessment
type SubmissionContext = engine.SubmissionContext
type SignalFunc = engine.SignalFunc
type SignalSet = engine.SignalSet
type DupeChecker = engine.DupeChecker
type DupeMatch = engine.DupeMatch
type TrustLookup = engine.TrustLookup

var (
	ActionApprove = engine.ActionApprove
	ActionReject  = engine.ActionReject
	ActionFlag    = engine.ActionFlag
	ActionReview  = engine.ActionReview

	RiskLow    = engine.RiskLow
	RiskMedium = engine.RiskMedium
	RiskHigh   = engine.RiskHigh
)
