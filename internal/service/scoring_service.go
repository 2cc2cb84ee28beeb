package service

import (
	"strings"

	"github.com/lshigami/QuizMe/internal/model"
)

// ScoringService decides whether a submitted answer is correct for a given
// question. It is a pure function of the question and the answer.
type ScoringService interface {
	Score(question *model.Question, answer string) bool
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

// Score dispatches on the question type.
//
// MULTIPLE_CHOICE and TRUE_FALSE require exact string equality, case
// sensitive and without trimming. ESSAY answers are correct when they
// contain any one of the accepted strings, case-insensitively; this is a
// substring match, not token-boundary aware, so an accepted answer "10"
// also matches "210". Both rules mirror the grading behavior this service
// replaces and are kept deliberately.
func (s *scoringService) Score(question *model.Question, answer string) bool {
	switch question.Type {
	case model.QuestionTypeMultipleChoice, model.QuestionTypeTrueFalse:
		return answer == question.CorrectAnswer
	case model.QuestionTypeEssay:
		lowered := strings.ToLower(answer)
		for _, accepted := range question.AcceptedAnswers {
			if strings.Contains(lowered, strings.ToLower(accepted)) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
