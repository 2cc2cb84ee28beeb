package service

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/QuizMe/internal/dto"
	"github.com/lshigami/QuizMe/internal/model"
	"github.com/lshigami/QuizMe/internal/repository"
	"github.com/rs/zerolog/log"
)

// ParticipationService orchestrates one participant's attempt:
// Start → RecordAnswer (repeatable) → Challenge (optional) → Submit.
type ParticipationService interface {
	Start(req dto.ParticipationCreateDTO) (*dto.ParticipationDTO, error)
	RecordAnswer(req dto.ResponseCreateDTO) (*dto.ResponseDTO, error)
	GetResponses(participationID uint) ([]dto.ResponseDTO, error)
	Challenge(responseID uint, reason string) (*dto.ResponseDTO, error)
	Submit(participationID uint, timeSpentSeconds int) (*dto.SubmitResultDTO, error)
}

type participationService struct {
	quizRepo          repository.QuizRepository
	questionRepo      repository.QuestionRepository
	participationRepo repository.ParticipationRepository
	responseRepo      repository.ResponseRepository
	scoring           ScoringService
}

func NewParticipationService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	participationRepo repository.ParticipationRepository,
	responseRepo repository.ResponseRepository,
	scoring ScoringService,
) ParticipationService {
	return &participationService{
		quizRepo:          quizRepo,
		questionRepo:      questionRepo,
		participationRepo: participationRepo,
		responseRepo:      responseRepo,
		scoring:           scoring,
	}
}

func (s *participationService) Start(req dto.ParticipationCreateDTO) (*dto.ParticipationDTO, error) {
	if _, err := s.quizRepo.FindByID(req.QuizID); err != nil {
		return nil, fmt.Errorf("quiz %d: %w", req.QuizID, err)
	}

	participation := model.Participation{
		QuizID:          req.QuizID,
		ParticipantName: req.ParticipantName,
		StartedAt:       time.Now(),
	}
	if err := s.participationRepo.Create(&participation); err != nil {
		log.Error().Err(err).Uint("quizID", req.QuizID).Msg("Failed to create participation")
		return nil, fmt.Errorf("creating participation: %w", err)
	}

	var resp dto.ParticipationDTO
	if err := copier.Copy(&resp, &participation); err != nil {
		return nil, fmt.Errorf("preparing participation response: %w", err)
	}
	return &resp, nil
}

// RecordAnswer scores the answer immediately and upserts the response keyed
// on (participation, question), so answering the same question again
// replaces the earlier response.
func (s *participationService) RecordAnswer(req dto.ResponseCreateDTO) (*dto.ResponseDTO, error) {
	question, err := s.questionRepo.FindByID(req.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("question %d: %w", req.QuestionID, err)
	}
	participation, err := s.participationRepo.FindByID(req.ParticipationID)
	if err != nil {
		return nil, fmt.Errorf("participation %d: %w", req.ParticipationID, err)
	}
	if question.QuizID != participation.QuizID {
		return nil, fmt.Errorf("%w: question %d does not belong to quiz %d",
			model.ErrValidation, question.ID, participation.QuizID)
	}

	isCorrect := s.scoring.Score(question, req.Answer)
	response := model.Response{
		ParticipationID:   req.ParticipationID,
		QuestionID:        req.QuestionID,
		Answer:            req.Answer,
		IsCorrect:         &isCorrect,
		IsMarkedForReview: req.IsMarkedForReview,
	}
	if err := s.responseRepo.Upsert(&response); err != nil {
		log.Error().Err(err).Uint("participationID", req.ParticipationID).
			Uint("questionID", req.QuestionID).Msg("Failed to store response")
		return nil, fmt.Errorf("storing response: %w", err)
	}

	var resp dto.ResponseDTO
	if err := copier.Copy(&resp, &response); err != nil {
		return nil, fmt.Errorf("preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *participationService) GetResponses(participationID uint) ([]dto.ResponseDTO, error) {
	if _, err := s.participationRepo.FindByID(participationID); err != nil {
		return nil, fmt.Errorf("participation %d: %w", participationID, err)
	}
	responses, err := s.responseRepo.FindByParticipationID(participationID)
	if err != nil {
		return nil, fmt.Errorf("fetching responses for participation %d: %w", participationID, err)
	}
	dtos := make([]dto.ResponseDTO, 0, len(responses))
	for _, response := range responses {
		var item dto.ResponseDTO
		if err := copier.Copy(&item, &response); err != nil {
			return nil, fmt.Errorf("preparing response data: %w", err)
		}
		dtos = append(dtos, item)
	}
	return dtos, nil
}

// Challenge attaches a dispute reason to a response. The grading outcome is
// left unchanged; challenges are reviewed by a human, not re-scored.
func (s *participationService) Challenge(responseID uint, reason string) (*dto.ResponseDTO, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: challenge reason is required", model.ErrValidation)
	}
	response, err := s.responseRepo.FindByID(responseID)
	if err != nil {
		return nil, fmt.Errorf("response %d: %w", responseID, err)
	}
	response.ChallengeReason = &reason
	if err := s.responseRepo.Update(response); err != nil {
		log.Error().Err(err).Uint("responseID", responseID).Msg("Failed to attach challenge")
		return nil, fmt.Errorf("updating response %d: %w", responseID, err)
	}

	var resp dto.ResponseDTO
	if err := copier.Copy(&resp, response); err != nil {
		return nil, fmt.Errorf("preparing response data: %w", err)
	}
	return &resp, nil
}

// Submit aggregates the recorded responses into the final score and marks
// the participation complete. A participation can be submitted once; a
// second submit is rejected rather than silently recomputing the result.
func (s *participationService) Submit(participationID uint, timeSpentSeconds int) (*dto.SubmitResultDTO, error) {
	participation, err := s.participationRepo.FindByID(participationID)
	if err != nil {
		return nil, fmt.Errorf("participation %d: %w", participationID, err)
	}
	if participation.Completed {
		return nil, fmt.Errorf("%w: participation %d is already submitted", model.ErrValidation, participationID)
	}

	responses, err := s.responseRepo.FindByParticipationID(participationID)
	if err != nil {
		return nil, fmt.Errorf("fetching responses for participation %d: %w", participationID, err)
	}
	questions, err := s.questionRepo.FindByQuizID(participation.QuizID)
	if err != nil {
		return nil, fmt.Errorf("fetching questions for quiz %d: %w", participation.QuizID, err)
	}

	correct := 0
	for _, response := range responses {
		if response.IsCorrect != nil && *response.IsCorrect {
			correct++
		}
	}

	now := time.Now()
	score := correct
	timeSpent := timeSpentSeconds
	participation.Score = &score
	participation.TimeSpent = &timeSpent
	participation.Completed = true
	participation.FinishedAt = &now
	if err := s.participationRepo.Update(participation); err != nil {
		log.Error().Err(err).Uint("participationID", participationID).Msg("Failed to finalize participation")
		return nil, fmt.Errorf("finalizing participation %d: %w", participationID, err)
	}

	result := dto.SubmitResultDTO{
		TotalQuestions: len(questions),
		CorrectAnswers: correct,
		Percentage:     percentage(correct, len(questions)),
	}
	if err := copier.Copy(&result.Participation, participation); err != nil {
		return nil, fmt.Errorf("preparing submit result: %w", err)
	}
	result.Responses = make([]dto.ResponseDTO, 0, len(responses))
	for _, response := range responses {
		var item dto.ResponseDTO
		if err := copier.Copy(&item, &response); err != nil {
			return nil, fmt.Errorf("preparing submit result: %w", err)
		}
		result.Responses = append(result.Responses, item)
	}
	return &result, nil
}

func percentage(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}
