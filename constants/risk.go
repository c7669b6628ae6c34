package constants

// RiskTier is the fraud scorer's verdict.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// Decision is the approval engine's terminal verdict.
type Decision string

const (
	DecisionPass      Decision = "pass"
	DecisionFail      Decision = "fail"
	DecisionNeedsInfo Decision = "needs_info"
)
