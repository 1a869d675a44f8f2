package service

import (
	"errors"
	"fmt"
	"time"
)

// Failures the vetting flow reports to candidates. Controllers map these to
// HTTP status codes; none of them should crash the process.
var (
	ErrApplicationNotFound      = errors.New("no application found with this email")
	ErrAlreadyMentor            = errors.New("you are already an approved mentor")
	ErrAlreadyPending           = errors.New("you already have a pending application")
	ErrInvalidSpecialization    = errors.New("unknown specialization")
	ErrInvalidToken             = errors.New("invalid test token")
	ErrAlreadyCompleted         = errors.New("this test has already been completed")
	ErrTokenExpired             = errors.New("this test link has expired")
	ErrTimeExpired              = errors.New("time has expired for this test")
	ErrNotStarted               = errors.New("test was not started properly")
	ErrInsufficientQuestionBank = errors.New("question bank cannot supply the minimum number of questions")
)

// RetryNotAllowedError rejects a reapplication while the cooldown is still
// running.
type RetryNotAllowedError struct {
	RetryAllowedAt time.Time
}

func (e *RetryNotAllowedError) Error() string {
	days := int(time.Until(e.RetryAllowedAt).Hours() / 24)
	return fmt.Sprintf("you can retry after %d days", days)
}
