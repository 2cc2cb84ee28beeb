package memory

import (
	"sort"
	"sync"

	"github.com/lshigami/QuizMe/internal/model"
)

// QuestionRepository is the in-memory implementation of
// repository.QuestionRepository.
type QuestionRepository struct {
	mu        sync.RWMutex
	questions map[uint]model.Question
	nextID    uint
}

func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{
		questions: make(map[uint]model.Question),
		nextID:    1,
	}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	question.ID = r.nextID
	r.nextID++
	r.questions[question.ID] = *question
	return nil
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	question, ok := r.questions[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &question, nil
}

func (r *QuestionRepository) FindByQuizID(quizID uint) ([]model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	questions := make([]model.Question, 0)
	for _, question := range r.questions {
		if question.QuizID == quizID {
			questions = append(questions, question)
		}
	}
	sort.Slice(questions, func(i, j int) bool {
		return questions[i].OrderInQuiz < questions[j].OrderInQuiz
	})
	return questions, nil
}

func (r *QuestionRepository) Update(question *model.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.questions[question.ID]; !ok {
		return model.ErrNotFound
	}
	r.questions[question.ID] = *question
	return nil
}

func (r *QuestionRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.questions[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.questions, id)
	return nil
}

func (r *QuestionRepository) DeleteByQuizID(quizID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, question := range r.questions {
		if question.QuizID == quizID {
			delete(r.questions, id)
		}
	}
	return nil
}
