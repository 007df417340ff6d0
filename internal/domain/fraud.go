package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFraudSuspected indicates that the fraud risk score crossed the rejection threshold.
var ErrFraudSuspected = errors.New("fraud suspected")

// FraudCheckResult is the outcome of one fraud heuristic or of the whole
// evaluation. Scores from independent heuristics accumulate.
type FraudCheckResult struct {
	Passed    bool     `json:"passed"`
	RiskScore int      `json:"risk_score"`
	Reasons   []string `json:"reasons,omitempty"`
}

// FraudError carries the accumulated risk score and the contributing reasons.
type FraudError struct {
	RiskScore int
	Reasons   []string
}

func (e *FraudError) Error() string {
	return fmt.Sprintf("transaction rejected due to high fraud risk: score %d%%, reasons: %s",
		e.RiskScore, strings.Join(e.Reasons, ", "))
}

// Is makes the rejection match ErrFraudSuspected in errors.Is chains.
func (e *FraudError) Is(target error) bool {
	return target == ErrFraudSuspected
}
