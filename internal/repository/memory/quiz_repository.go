package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lshigami/QuizMe/internal/model"
	"github.com/lshigami/QuizMe/internal/repository"
)

const codeRetries = 5

// QuizRepository is the in-memory implementation of
// repository.QuizRepository. Ids are allocated from a monotonically
// increasing counter starting at 1 and never reused; code uniqueness is
// enforced inside the same critical section as the map write, so concurrent
// creates can neither observe nor persist a duplicate code.
type QuizRepository struct {
	questions repository.QuestionRepository

	mu      sync.RWMutex
	quizzes map[uint]model.Quiz
	codes   map[string]uint
	nextID  uint
}

func NewQuizRepository(questions repository.QuestionRepository) *QuizRepository {
	return &QuizRepository{
		questions: questions,
		quizzes:   make(map[uint]model.Quiz),
		codes:     make(map[string]uint),
		nextID:    1,
	}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	code, err := r.uniqueCodeLocked()
	if err != nil {
		return err
	}

	quiz.ID = r.nextID
	r.nextID++
	quiz.Code = code
	quiz.CreatedAt = time.Now()

	stored := *quiz
	stored.Questions = nil // questions live in their own store
	r.quizzes[quiz.ID] = stored
	r.codes[code] = quiz.ID
	return nil
}

func (r *QuizRepository) uniqueCodeLocked() (string, error) {
	for attempt := 0; attempt < codeRetries; attempt++ {
		code, err := repository.NewQuizCode()
		if err != nil {
			return "", fmt.Errorf("generating quiz code: %w", err)
		}
		if _, taken := r.codes[code]; !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique quiz code after %d attempts", codeRetries)
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &quiz, nil
}

func (r *QuizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	quiz, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	questions, err := r.questions.FindByQuizID(quiz.ID)
	if err != nil {
		return nil, err
	}
	quiz.Questions = questions
	return quiz, nil
}

func (r *QuizRepository) FindByCodeWithQuestions(code string) (*model.Quiz, error) {
	r.mu.RLock()
	id, ok := r.codes[code]
	r.mu.RUnlock()
	if !ok {
		return nil, model.ErrNotFound
	}
	return r.FindByIDWithQuestions(id)
}

func (r *QuizRepository) FindAll() ([]model.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	quizzes := make([]model.Quiz, 0, len(r.quizzes))
	for _, quiz := range r.quizzes {
		quizzes = append(quizzes, quiz)
	}
	sort.Slice(quizzes, func(i, j int) bool { return quizzes[i].ID < quizzes[j].ID })
	return quizzes, nil
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.quizzes[quiz.ID]
	if !ok {
		return model.ErrNotFound
	}
	if quiz.Code != existing.Code {
		delete(r.codes, existing.Code)
		r.codes[quiz.Code] = quiz.ID
	}
	stored := *quiz
	stored.Questions = nil
	r.quizzes[quiz.ID] = stored
	return nil
}

func (r *QuizRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	quiz, ok := r.quizzes[id]
	if !ok {
		return model.ErrNotFound
	}
	delete(r.quizzes, id)
	delete(r.codes, quiz.Code)
	return nil
}
