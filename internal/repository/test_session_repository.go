package repository

import (
	"github.com/edulink/mentor-service/internal/model"
	"gorm.io/gorm"
)

type TestSessionRepository interface {
	Create(session *model.TestSession) error
	Update(session *model.TestSession) error
	FindByToken(token string) (*model.TestSession, error)
	// StartIfNotStarted freezes the question set and timer atomically. It only
	// succeeds while the session is still Pending, so two racing first starts
	// produce a single draw; the loser re-reads the frozen set.
	StartIfNotStarted(session *model.TestSession, updates map[string]interface{}) (bool, error)
}

type testSessionRepository struct {
	db *gorm.DB
}

func NewTestSessionRepository(db *gorm.DB) TestSessionRepository {
	return &testSessionRepository{db: db}
}

func (r *testSessionRepository) Create(session *model.TestSession) error {
	return r.db.Create(session).Error
}

func (r *testSessionRepository) Update(session *model.TestSession) error {
	return r.db.Save(session).Error
}

func (r *testSessionRepository) FindByToken(token string) (*model.TestSession, error) {
	var session model.TestSession
	err := r.db.Preload("Application").Where("token = ?", token).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *testSessionRepository) StartIfNotStarted(session *model.TestSession, updates map[string]interface{}) (bool, error) {
	res := r.db.Model(&model.TestSession{}).
		Where("id = ? AND status = ?", session.ID, model.SessionPending).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
