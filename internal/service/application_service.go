package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/edulink/mentor-service/internal/dto"
	"github.com/edulink/mentor-service/internal/model"
	"github.com/edulink/mentor-service/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// specializations the application form accepts.
var specializations = []string{
	"Software Engineering",
	"Data Science",
	"Machine Learning",
	"Web Development",
	"Mobile Development",
	"UI/UX Design",
	"DevOps",
	"Cybersecurity",
	"Cloud Computing",
	"Project Management",
	"Product Management",
	"Business Analysis",
	"Digital Marketing",
	"Other",
}

// ApplicationService owns the candidate-facing state machine:
// Pending -> TestSent -> Approved/Rejected, including resubmission once a
// cooldown expires.
type ApplicationService interface {
	Apply(req dto.CreateApplicationRequest) (*dto.ApplicationSubmittedResponse, error)
	GetStatus(email string) (*dto.ApplicationResponse, error)
	ListApplications(query dto.ListApplicationsQuery) (*dto.ApplicationListResponse, error)
	Specializations() []string
}

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	sessionService  TestSessionService
	mailer          EmailService
}

func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	sessionService TestSessionService,
	mailer EmailService,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		sessionService:  sessionService,
		mailer:          mailer,
	}
}

func (s *applicationService) Specializations() []string {
	out := make([]string, len(specializations))
	copy(out, specializations)
	return out
}

func (s *applicationService) Apply(req dto.CreateApplicationRequest) (*dto.ApplicationSubmittedResponse, error) {
	if !isValidSpecialization(req.Specialization) {
		return nil, ErrInvalidSpecialization
	}

	existing, err := s.applicationRepo.FindByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up application: %w", err)
	}

	if existing != nil {
		switch {
		case existing.Status == model.ApplicationRejected &&
			existing.RetryAllowedAt != nil &&
			!existing.RetryAllowedAt.After(time.Now()):
			// Cooldown over: overwrite the submitted fields and re-issue a
			// fresh token. Nothing is persisted until issuance succeeds, so a
			// failed issuance leaves the rejected row, cooldown included,
			// exactly as it was. Attempt history stays on the row.
			applyRequestFields(existing, req)
			existing.RetryAllowedAt = nil
			if err := s.issueAndNotify(existing); err != nil {
				return nil, err
			}
			return &dto.ApplicationSubmittedResponse{
				ApplicationID: existing.ID,
				Message:       "Application resubmitted successfully! Check your email for the test link.",
				Status:        model.ApplicationTestSent,
			}, nil

		case existing.Status == model.ApplicationApproved:
			return nil, ErrAlreadyMentor

		case existing.Status == model.ApplicationRejected && existing.RetryAllowedAt != nil:
			return nil, &RetryNotAllowedError{RetryAllowedAt: *existing.RetryAllowedAt}

		default:
			return nil, ErrAlreadyPending
		}
	}

	application := &model.Application{Status: model.ApplicationPending}
	applyRequestFields(application, req)
	if err := s.applicationRepo.Create(application); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	if err := s.issueAndNotify(application); err != nil {
		// No exam could be attached; remove the intake so the candidate can
		// apply again once the bank recovers.
		if delErr := s.applicationRepo.Delete(application); delErr != nil {
			log.Error().Err(delErr).Uint("applicationID", application.ID).Msg("Apply: failed to roll back application after issuance failure")
		}
		return nil, err
	}

	return &dto.ApplicationSubmittedResponse{
		ApplicationID: application.ID,
		Message:       "Application submitted successfully! Check your email for the test link.",
		Status:        model.ApplicationTestSent,
	}, nil
}

func (s *applicationService) GetStatus(email string) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to look up application: %w", err)
	}

	var resp dto.ApplicationResponse
	if err := copier.Copy(&resp, application); err != nil {
		return nil, fmt.Errorf("failed to prepare application response: %w", err)
	}
	return &resp, nil
}

func (s *applicationService) ListApplications(query dto.ListApplicationsQuery) (*dto.ApplicationListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	applications, total, err := s.applicationRepo.FindAllPaged(query.Status, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	data := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		var item dto.ApplicationResponse
		if err := copier.Copy(&item, &applications[i]); err != nil {
			log.Error().Err(err).Uint("applicationID", applications[i].ID).Msg("ListApplications: failed to map application")
			continue
		}
		data = append(data, item)
	}

	return &dto.ApplicationListResponse{
		Data:     data,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// issueAndNotify creates the session, then persists the application as
// TestSent in a single save (staged in-memory field changes land with it)
// and dispatches the invitation. The application row is never written when
// issuance fails. A failed send does not roll the transition back: the token
// stays valid and the link can be resent out of band.
func (s *applicationService) issueAndNotify(application *model.Application) error {
	session, err := s.sessionService.IssueSession(application)
	if err != nil {
		return err
	}

	application.Status = model.ApplicationTestSent
	if err := s.applicationRepo.Update(application); err != nil {
		return fmt.Errorf("failed to transition application to TestSent: %w", err)
	}

	if err := s.mailer.SendTestInvitation(application, session.Token); err != nil {
		log.Error().Err(err).Str("email", application.Email).Msg("Apply: failed to send test invitation email")
	}
	return nil
}

func applyRequestFields(application *model.Application, req dto.CreateApplicationRequest) {
	application.FullName = req.FullName
	application.Email = req.Email
	application.PhoneNumber = req.PhoneNumber
	application.Specialization = req.Specialization
	application.YearsOfExperience = req.YearsOfExperience
	application.LinkedInURL = req.LinkedInURL
	application.Bio = req.Bio
	application.CurrentPosition = req.CurrentPosition
	application.Company = req.Company
}

func isValidSpecialization(specialization string) bool {
	for _, s := range specializations {
		if s == specialization {
			return true
		}
	}
	return false
}
