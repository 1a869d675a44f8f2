package service

// Fixed business constants of the vetting policy. Not configurable per
// request.
const (
	PassingScore      = 70.0
	lowScoreBoundary  = 50.0
	shortCooldownDays = 7
	longCooldownDays  = 14
)

// RetryOutcome is the policy's verdict on a graded score. CooldownDays is
// zero when the candidate passed.
type RetryOutcome struct {
	Passed       bool
	CooldownDays int
}

// RetryPolicyService decides whether a score passes and, if not, how long
// the candidate waits before reapplying.
type RetryPolicyService interface {
	Evaluate(score float64) RetryOutcome
}

type retryPolicyService struct{}

func NewRetryPolicyService() RetryPolicyService {
	return &retryPolicyService{}
}

func (s *retryPolicyService) Evaluate(score float64) RetryOutcome {
	switch {
	case score >= PassingScore:
		return RetryOutcome{Passed: true}
	case score < lowScoreBoundary:
		return RetryOutcome{Passed: false, CooldownDays: longCooldownDays}
	default:
		return RetryOutcome{Passed: false, CooldownDays: shortCooldownDays}
	}
}
