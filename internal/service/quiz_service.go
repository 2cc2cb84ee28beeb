package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/QuizMe/internal/dto"
	"github.com/lshigami/QuizMe/internal/model"
	"github.com/lshigami/QuizMe/internal/repository"
	"github.com/rs/zerolog/log"
)

// defaultDuration is applied when the author does not set one, in minutes.
const defaultDuration = 30

type QuizService interface {
	CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizDTO, error)
	GetAllQuizzes() ([]dto.QuizSummaryDTO, error)
	GetQuizByID(id uint) (*dto.QuizDTO, error)
	GetQuizByCode(code string) (*dto.QuizDTO, error)
	DeleteQuiz(id uint) error
	GetParticipations(quizID uint) ([]dto.ParticipationDTO, error)
}

type quizService struct {
	quizRepo          repository.QuizRepository
	questionRepo      repository.QuestionRepository
	participationRepo repository.ParticipationRepository
}

func NewQuizService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	participationRepo repository.ParticipationRepository,
) QuizService {
	return &quizService{
		quizRepo:          quizRepo,
		questionRepo:      questionRepo,
		participationRepo: participationRepo,
	}
}

func (s *quizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizDTO, error) {
	if err := validateQuestions(req.Questions); err != nil {
		return nil, err
	}

	duration := req.Duration
	if duration == 0 {
		duration = defaultDuration
	}
	quiz := model.Quiz{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Duration:    duration,
	}
	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Msg("Failed to create quiz")
		return nil, fmt.Errorf("creating quiz: %w", err)
	}

	questions := make([]model.Question, 0, len(req.Questions))
	for _, qDto := range req.Questions {
		question := model.Question{
			QuizID:          quiz.ID,
			Text:            qDto.Text,
			Type:            qDto.Type,
			Options:         qDto.Options,
			CorrectAnswer:   qDto.CorrectAnswer,
			AcceptedAnswers: qDto.AcceptedAnswers,
			OrderInQuiz:     qDto.Order,
		}
		if err := s.questionRepo.Create(&question); err != nil {
			log.Error().Err(err).Uint("quizID", quiz.ID).Msg("Failed to create question")
			return nil, fmt.Errorf("creating question for quiz %d: %w", quiz.ID, err)
		}
		questions = append(questions, question)
	}
	quiz.Questions = questions

	var resp dto.QuizDTO
	if err := copier.Copy(&resp, &quiz); err != nil {
		return nil, fmt.Errorf("preparing quiz response: %w", err)
	}
	return &resp, nil
}

func validateQuestions(questions []dto.QuestionCreateDTO) error {
	orders := make(map[int]bool, len(questions))
	for _, q := range questions {
		if orders[q.Order] {
			return fmt.Errorf("%w: duplicate question order %d", model.ErrValidation, q.Order)
		}
		orders[q.Order] = true

		switch q.Type {
		case model.QuestionTypeMultipleChoice:
			if len(q.Options) < 2 {
				return fmt.Errorf("%w: question %d of type MULTIPLE_CHOICE needs at least two options", model.ErrValidation, q.Order)
			}
			if q.CorrectAnswer == "" {
				return fmt.Errorf("%w: question %d of type MULTIPLE_CHOICE needs a correct answer", model.ErrValidation, q.Order)
			}
		case model.QuestionTypeTrueFalse:
			if q.CorrectAnswer == "" {
				return fmt.Errorf("%w: question %d of type TRUE_FALSE needs a correct answer", model.ErrValidation, q.Order)
			}
		case model.QuestionTypeEssay:
			// An empty accepted-answer list is legal; such a question is
			// simply never scored correct.
			if q.CorrectAnswer != "" {
				return fmt.Errorf("%w: question %d of type ESSAY takes accepted_answers, not correct_answer", model.ErrValidation, q.Order)
			}
		}
	}
	return nil
}

func (s *quizService) GetAllQuizzes() ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes")
		return nil, fmt.Errorf("fetching quizzes: %w", err)
	}

	summaries := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, quiz := range quizzes {
		questions, err := s.questionRepo.FindByQuizID(quiz.ID)
		if err != nil {
			return nil, fmt.Errorf("counting questions for quiz %d: %w", quiz.ID, err)
		}
		var summary dto.QuizSummaryDTO
		if err := copier.Copy(&summary, &quiz); err != nil {
			return nil, fmt.Errorf("preparing quiz summary: %w", err)
		}
		summary.QuestionCount = len(questions)
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *quizService) GetQuizByID(id uint) (*dto.QuizDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(id)
	if err != nil {
		return nil, fmt.Errorf("quiz %d: %w", id, err)
	}
	var resp dto.QuizDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, fmt.Errorf("preparing quiz response: %w", err)
	}
	return &resp, nil
}

func (s *quizService) GetQuizByCode(code string) (*dto.QuizDTO, error) {
	quiz, err := s.quizRepo.FindByCodeWithQuestions(code)
	if err != nil {
		return nil, fmt.Errorf("quiz with code %q: %w", code, err)
	}
	var resp dto.QuizDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, fmt.Errorf("preparing quiz response: %w", err)
	}
	return &resp, nil
}

// DeleteQuiz removes the quiz and its questions. Participations and their
// responses are kept as historical records.
func (s *quizService) DeleteQuiz(id uint) error {
	if _, err := s.quizRepo.FindByID(id); err != nil {
		return fmt.Errorf("quiz %d: %w", id, err)
	}
	if err := s.questionRepo.DeleteByQuizID(id); err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to delete quiz questions")
		return fmt.Errorf("deleting questions of quiz %d: %w", id, err)
	}
	if err := s.quizRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to delete quiz")
		return fmt.Errorf("deleting quiz %d: %w", id, err)
	}
	return nil
}

func (s *quizService) GetParticipations(quizID uint) ([]dto.ParticipationDTO, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		return nil, fmt.Errorf("quiz %d: %w", quizID, err)
	}
	participations, err := s.participationRepo.FindByQuizID(quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to list participations")
		return nil, fmt.Errorf("fetching participations for quiz %d: %w", quizID, err)
	}
	dtos := make([]dto.ParticipationDTO, 0, len(participations))
	for _, participation := range participations {
		var item dto.ParticipationDTO
		if err := copier.Copy(&item, &participation); err != nil {
			return nil, fmt.Errorf("preparing participation response: %w", err)
		}
		dtos = append(dtos, item)
	}
	return dtos, nil
}
