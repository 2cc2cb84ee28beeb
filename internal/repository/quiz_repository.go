package repository

import (
	"errors"
	"fmt"

	"github.com/lshigami/QuizMe/internal/model"
	"gorm.io/gorm"
)

// codeRetries bounds the regenerate-and-retry loop on code collisions.
const codeRetries = 5

type QuizRepository interface {
	// Create assigns a fresh unique code to the quiz and persists it
	// together with any populated questions.
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindByIDWithQuestions(id uint) (*model.Quiz, error)
	FindByCodeWithQuestions(code string) (*model.Quiz, error)
	FindAll() ([]model.Quiz, error)
	Update(quiz *model.Quiz) error
	Delete(id uint) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// The unique index on code is the arbiter under concurrent creates;
	// on a collision we regenerate and try again.
	for attempt := 0; attempt < codeRetries; attempt++ {
		code, err := NewQuizCode()
		if err != nil {
			return fmt.Errorf("generating quiz code: %w", err)
		}
		quiz.Code = code
		err = r.db.Create(quiz).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return fmt.Errorf("could not allocate a unique quiz code after %d attempts", codeRetries)
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &quiz, nil
}

func (r *quizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_in_quiz ASC")
	}).First(&quiz, id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &quiz, nil
}

func (r *quizRepository) FindByCodeWithQuestions(code string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_in_quiz ASC")
	}).Where("code = ?", code).First(&quiz).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &quiz, nil
}

func (r *quizRepository) FindAll() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if err := r.db.Order("id ASC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) Update(quiz *model.Quiz) error {
	return r.db.Save(quiz).Error
}

func (r *quizRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Quiz{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrNotFound
	}
	return err
}
