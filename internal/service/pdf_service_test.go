package service

import (
	"bytes"
	"testing"

	"github.com/lshigami/QuizMe/internal/dto"
	"github.com/lshigami/QuizMe/internal/model"
)

func TestRenderProducesPDF(t *testing.T) {
	env := newTestEnv()
	quiz := env.createQuiz(t, trueFalseQuestion(1), multipleChoiceQuestion(2))
	participation, _ := env.participations.Start(dto.ParticipationCreateDTO{QuizID: quiz.ID, ParticipantName: "Alice"})
	if _, err := env.participations.RecordAnswer(dto.ResponseCreateDTO{
		ParticipationID: participation.ID,
		QuestionID:      quiz.Questions[0].ID,
		Answer:          "true",
	}); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if _, err := env.participations.Submit(participation.ID, 42); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	report, err := env.reports.BuildReport(participation.ID)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	pdfBytes, err := NewPDFService().Render(report)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
	if len(pdfBytes) < 1000 {
		t.Errorf("suspiciously small PDF: %d bytes", len(pdfBytes))
	}
}

func TestRenderHandlesUnsubmittedParticipation(t *testing.T) {
	env := newTestEnv()
	quiz := env.createQuiz(t, dto.QuestionCreateDTO{
		Text:            "Essay",
		Type:            model.QuestionTypeEssay,
		AcceptedAnswers: []string{"x"},
		Order:           1,
	})
	participation, _ := env.participations.Start(dto.ParticipationCreateDTO{QuizID: quiz.ID, ParticipantName: "Bob"})

	report, err := env.reports.BuildReport(participation.ID)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	// Score, time and finish date are all still null; the renderer must
	// fall back to placeholders instead of dereferencing them.
	pdfBytes, err := NewPDFService().Render(report)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
}
