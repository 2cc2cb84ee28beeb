package repository

import (
	"github.com/lshigami/QuizMe/internal/model"
	"gorm.io/gorm"
)

type ParticipationRepository interface {
	Create(participation *model.Participation) error
	FindByID(id uint) (*model.Participation, error)
	FindByIDWithQuiz(id uint) (*model.Participation, error)
	// FindByQuizID returns participations in creation order.
	FindByQuizID(quizID uint) ([]model.Participation, error)
	Update(participation *model.Participation) error
}

type participationRepository struct {
	db *gorm.DB
}

func NewParticipationRepository(db *gorm.DB) ParticipationRepository {
	return &participationRepository{db: db}
}

func (r *participationRepository) Create(participation *model.Participation) error {
	return r.db.Create(participation).Error
}

func (r *participationRepository) FindByID(id uint) (*model.Participation, error) {
	var participation model.Participation
	if err := r.db.First(&participation, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &participation, nil
}

func (r *participationRepository) FindByIDWithQuiz(id uint) (*model.Participation, error) {
	var participation model.Participation
	if err := r.db.Preload("Quiz").First(&participation, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &participation, nil
}

func (r *participationRepository) FindByQuizID(quizID uint) ([]model.Participation, error) {
	var participations []model.Participation
	err := r.db.Where("quiz_id = ?", quizID).Order("id ASC").Find(&participations).Error
	if err != nil {
		return nil, err
	}
	return participations, nil
}

func (r *participationRepository) Update(participation *model.Participation) error {
	return r.db.Save(participation).Error
}
