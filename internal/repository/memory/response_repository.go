package memory

import (
	"sort"
	"sync"

	"github.com/lshigami/QuizMe/internal/model"
)

// ResponseRepository is the in-memory implementation of
// repository.ResponseRepository. Upsert performs the lookup and the write
// under one lock, so concurrent answers to the same question collapse into a
// single response row.
type ResponseRepository struct {
	mu        sync.RWMutex
	responses map[uint]model.Response
	nextID    uint
}

func NewResponseRepository() *ResponseRepository {
	return &ResponseRepository{
		responses: make(map[uint]model.Response),
		nextID:    1,
	}
}

func (r *ResponseRepository) Upsert(response *model.Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.responses {
		if existing.ParticipationID == response.ParticipationID &&
			existing.QuestionID == response.QuestionID {
			response.ID = id
			r.responses[id] = stripJoin(*response)
			return nil
		}
	}
	response.ID = r.nextID
	r.nextID++
	r.responses[response.ID] = stripJoin(*response)
	return nil
}

func (r *ResponseRepository) FindByID(id uint) (*model.Response, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	response, ok := r.responses[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &response, nil
}

func (r *ResponseRepository) FindByParticipationID(participationID uint) ([]model.Response, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	responses := make([]model.Response, 0)
	for _, response := range r.responses {
		if response.ParticipationID == participationID {
			responses = append(responses, response)
		}
	}
	sort.Slice(responses, func(i, j int) bool { return responses[i].ID < responses[j].ID })
	return responses, nil
}

func (r *ResponseRepository) Update(response *model.Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.responses[response.ID]; !ok {
		return model.ErrNotFound
	}
	r.responses[response.ID] = stripJoin(*response)
	return nil
}

func stripJoin(response model.Response) model.Response {
	response.Question = model.Question{}
	return response
}
