package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/lshigami/QuizMe/internal/model"
	"github.com/lshigami/QuizMe/internal/repository"
)

// ParticipationRepository is the in-memory implementation of
// repository.ParticipationRepository. The quiz join in FindByIDWithQuiz goes
// through the quiz store rather than duplicating quiz records here.
type ParticipationRepository struct {
	quizzes repository.QuizRepository

	mu             sync.RWMutex
	participations map[uint]model.Participation
	nextID         uint
}

func NewParticipationRepository(quizzes repository.QuizRepository) *ParticipationRepository {
	return &ParticipationRepository{
		quizzes:        quizzes,
		participations: make(map[uint]model.Participation),
		nextID:         1,
	}
}

func (r *ParticipationRepository) Create(participation *model.Participation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	participation.ID = r.nextID
	r.nextID++
	if participation.StartedAt.IsZero() {
		participation.StartedAt = time.Now()
	}
	stored := *participation
	stored.Quiz = model.Quiz{}
	r.participations[participation.ID] = stored
	return nil
}

func (r *ParticipationRepository) FindByID(id uint) (*model.Participation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	participation, ok := r.participations[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &participation, nil
}

func (r *ParticipationRepository) FindByIDWithQuiz(id uint) (*model.Participation, error) {
	participation, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	quiz, err := r.quizzes.FindByID(participation.QuizID)
	if err != nil {
		return nil, err
	}
	participation.Quiz = *quiz
	return participation, nil
}

func (r *ParticipationRepository) FindByQuizID(quizID uint) ([]model.Participation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	participations := make([]model.Participation, 0)
	for _, participation := range r.participations {
		if participation.QuizID == quizID {
			participations = append(participations, participation)
		}
	}
	sort.Slice(participations, func(i, j int) bool {
		return participations[i].ID < participations[j].ID
	})
	return participations, nil
}

func (r *ParticipationRepository) Update(participation *model.Participation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.participations[participation.ID]; !ok {
		return model.ErrNotFound
	}
	stored := *participation
	stored.Quiz = model.Quiz{}
	r.participations[participation.ID] = stored
	return nil
}
