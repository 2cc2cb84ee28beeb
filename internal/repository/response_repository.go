package repository

import (
	"errors"

	"github.com/lshigami/QuizMe/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	// Upsert stores the response keyed on (participation, question). A
	// second answer to the same question replaces the first in place,
	// keeping its id, so a participation never accumulates duplicate
	// responses for one question.
	Upsert(response *model.Response) error
	FindByID(id uint) (*model.Response, error)
	// FindByParticipationID returns responses in creation order.
	FindByParticipationID(participationID uint) ([]model.Response, error)
	Update(response *model.Response) error
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Upsert(response *model.Response) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Response
		err := tx.Where("participation_id = ? AND question_id = ?",
			response.ParticipationID, response.QuestionID).First(&existing).Error
		switch {
		case err == nil:
			response.ID = existing.ID
			return tx.Save(response).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(response).Error
		default:
			return err
		}
	})
}

func (r *responseRepository) FindByID(id uint) (*model.Response, error) {
	var response model.Response
	if err := r.db.First(&response, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &response, nil
}

func (r *responseRepository) FindByParticipationID(participationID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Where("participation_id = ?", participationID).Order("id ASC").Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepository) Update(response *model.Response) error {
	return r.db.Save(response).Error
}
