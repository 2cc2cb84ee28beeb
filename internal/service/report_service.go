package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/QuizMe/internal/dto"
	"github.com/lshigami/QuizMe/internal/model"
	"github.com/lshigami/QuizMe/internal/repository"
)

// ReportService joins a participation with its quiz, questions and
// responses into the result set used by the results view and the PDF
// export.
type ReportService interface {
	BuildReport(participationID uint) (*dto.ReportDTO, error)
}

type reportService struct {
	participationRepo repository.ParticipationRepository
	questionRepo      repository.QuestionRepository
	responseRepo      repository.ResponseRepository
}

func NewReportService(
	participationRepo repository.ParticipationRepository,
	questionRepo repository.QuestionRepository,
	responseRepo repository.ResponseRepository,
) ReportService {
	return &reportService{
		participationRepo: participationRepo,
		questionRepo:      questionRepo,
		responseRepo:      responseRepo,
	}
}

// BuildReport returns one entry per quiz question in quiz order. A question
// the participant never answered gets a placeholder response (empty answer,
// scored incorrect) so the report always covers the full quiz.
func (s *reportService) BuildReport(participationID uint) (*dto.ReportDTO, error) {
	participation, err := s.participationRepo.FindByIDWithQuiz(participationID)
	if err != nil {
		return nil, fmt.Errorf("participation %d: %w", participationID, err)
	}
	questions, err := s.questionRepo.FindByQuizID(participation.QuizID)
	if err != nil {
		return nil, fmt.Errorf("fetching questions for quiz %d: %w", participation.QuizID, err)
	}
	responses, err := s.responseRepo.FindByParticipationID(participationID)
	if err != nil {
		return nil, fmt.Errorf("fetching responses for participation %d: %w", participationID, err)
	}

	byQuestion := make(map[uint]model.Response, len(responses))
	for _, response := range responses {
		byQuestion[response.QuestionID] = response
	}

	report := dto.ReportDTO{
		QuizTitle:      participation.Quiz.Title,
		QuizCode:       participation.Quiz.Code,
		TotalQuestions: len(questions),
	}
	if err := copier.Copy(&report.Participation, participation); err != nil {
		return nil, fmt.Errorf("preparing report: %w", err)
	}

	correct := 0
	report.PerQuestion = make([]dto.ReportEntryDTO, 0, len(questions))
	for _, question := range questions {
		var entry dto.ReportEntryDTO
		if err := copier.Copy(&entry.Question, &question); err != nil {
			return nil, fmt.Errorf("preparing report: %w", err)
		}

		response, answered := byQuestion[question.ID]
		if answered {
			if err := copier.Copy(&entry.Response, &response); err != nil {
				return nil, fmt.Errorf("preparing report: %w", err)
			}
			if response.IsCorrect != nil && *response.IsCorrect {
				correct++
			}
		} else {
			incorrect := false
			entry.Response = dto.ResponseDTO{
				ParticipationID: participationID,
				QuestionID:      question.ID,
				Answer:          "",
				IsCorrect:       &incorrect,
			}
		}
		report.PerQuestion = append(report.PerQuestion, entry)
	}

	report.CorrectAnswers = correct
	report.Percentage = percentage(correct, len(questions))
	return &report, nil
}
