package service

import (
	"errors"
	"testing"

	"github.com/lshigami/QuizMe/internal/dto"
	"github.com/lshigami/QuizMe/internal/model"
)

func TestReportCoversEveryQuestion(t *testing.T) {
	env := newTestEnv()
	quiz := env.createQuiz(t,
		trueFalseQuestion(1),
		multipleChoiceQuestion(2),
		dto.QuestionCreateDTO{
			Text:            "Name the capital of France",
			Type:            model.QuestionTypeEssay,
			AcceptedAnswers: []string{"paris"},
			Order:           3,
		},
	)
	participation, _ := env.participations.Start(dto.ParticipationCreateDTO{QuizID: quiz.ID, ParticipantName: "Alice"})

	// Answer only the first question.
	if _, err := env.participations.RecordAnswer(dto.ResponseCreateDTO{
		ParticipationID: participation.ID,
		QuestionID:      quiz.Questions[0].ID,
		Answer:          "true",
	}); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}

	report, err := env.reports.BuildReport(participation.ID)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if len(report.PerQuestion) != 3 {
		t.Fatalf("report has %d entries, want 3", len(report.PerQuestion))
	}
	if report.TotalQuestions != 3 {
		t.Errorf("totalQuestions = %d, want 3", report.TotalQuestions)
	}
	if report.CorrectAnswers != 1 {
		t.Errorf("correctAnswers = %d, want 1", report.CorrectAnswers)
	}

	answered := report.PerQuestion[0]
	if answered.Response.Answer != "true" || answered.Response.IsCorrect == nil || !*answered.Response.IsCorrect {
		t.Errorf("answered entry = %+v", answered.Response)
	}

	for _, entry := range report.PerQuestion[1:] {
		if entry.Response.Answer != "" {
			t.Errorf("placeholder should have empty answer, got %q", entry.Response.Answer)
		}
		if entry.Response.IsCorrect == nil || *entry.Response.IsCorrect {
			t.Errorf("placeholder should be incorrect: %+v", entry.Response)
		}
		if entry.Response.QuestionID != entry.Question.ID {
			t.Errorf("placeholder not linked to its question: %+v", entry.Response)
		}
	}
}

func TestReportEntriesFollowQuestionOrder(t *testing.T) {
	env := newTestEnv()
	// Authored out of order on purpose.
	quiz := env.createQuiz(t, multipleChoiceQuestion(2), trueFalseQuestion(1))
	participation, _ := env.participations.Start(dto.ParticipationCreateDTO{QuizID: quiz.ID, ParticipantName: "Alice"})

	report, err := env.reports.BuildReport(participation.ID)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	for i, entry := range report.PerQuestion {
		if entry.Question.OrderInQuiz != i+1 {
			t.Errorf("entry %d has order %d, want %d", i, entry.Question.OrderInQuiz, i+1)
		}
	}
}

func TestReportPercentageZeroWithoutQuestions(t *testing.T) {
	if got := percentage(0, 0); got != 0 {
		t.Errorf("percentage(0, 0) = %v, want 0", got)
	}
}

func TestReportCarriesQuizMetadata(t *testing.T) {
	env := newTestEnv()
	quiz := env.createQuiz(t, trueFalseQuestion(1))
	participation, _ := env.participations.Start(dto.ParticipationCreateDTO{QuizID: quiz.ID, ParticipantName: "Alice"})

	report, err := env.reports.BuildReport(participation.ID)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if report.QuizTitle != "Capitals" {
		t.Errorf("quizTitle = %q", report.QuizTitle)
	}
	if report.QuizCode != quiz.Code {
		t.Errorf("quizCode = %q, want %q", report.QuizCode, quiz.Code)
	}
}

func TestReportUnknownParticipation(t *testing.T) {
	env := newTestEnv()
	if _, err := env.reports.BuildReport(123); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
