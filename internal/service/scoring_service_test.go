package service

import (
	"testing"

	"github.com/lshigami/QuizMe/internal/model"
)

func TestScoreExactMatchTypes(t *testing.T) {
	tests := []struct {
		name     string
		question model.Question
		answer   string
		want     bool
	}{
		{
			name:     "true/false exact match",
			question: model.Question{Type: model.QuestionTypeTrueFalse, CorrectAnswer: "true"},
			answer:   "true",
			want:     true,
		},
		{
			name:     "true/false case mismatch is wrong",
			question: model.Question{Type: model.QuestionTypeTrueFalse, CorrectAnswer: "true"},
			answer:   "True",
			want:     false,
		},
		{
			name:     "true/false trailing whitespace is wrong",
			question: model.Question{Type: model.QuestionTypeTrueFalse, CorrectAnswer: "true"},
			answer:   "true ",
			want:     false,
		},
		{
			name:     "multiple choice match",
			question: model.Question{Type: model.QuestionTypeMultipleChoice, Options: []string{"a", "b", "c"}, CorrectAnswer: "b"},
			answer:   "b",
			want:     true,
		},
		{
			name:     "multiple choice wrong option",
			question: model.Question{Type: model.QuestionTypeMultipleChoice, Options: []string{"a", "b", "c"}, CorrectAnswer: "b"},
			answer:   "a",
			want:     false,
		},
	}

	svc := NewScoringService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.Score(&tt.question, tt.answer); got != tt.want {
				t.Errorf("Score(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestScoreEssay(t *testing.T) {
	tests := []struct {
		name     string
		accepted []string
		answer   string
		want     bool
	}{
		{
			name:     "case-insensitive substring matches",
			accepted: []string{"paris", "lutetia"},
			answer:   "I think it is Paris",
			want:     true,
		},
		{
			name:     "no accepted answer contained",
			accepted: []string{"paris", "lutetia"},
			answer:   "rome",
			want:     false,
		},
		{
			name:     "empty accepted list is never correct",
			accepted: []string{},
			answer:   "anything",
			want:     false,
		},
		{
			name:     "substring match is not token aware",
			accepted: []string{"10"},
			answer:   "210",
			want:     true,
		},
		{
			name:     "second accepted answer matches",
			accepted: []string{"lutetia", "paris"},
			answer:   "PARIS obviously",
			want:     true,
		},
	}

	svc := NewScoringService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			question := model.Question{Type: model.QuestionTypeEssay, AcceptedAnswers: tt.accepted}
			if got := svc.Score(&question, tt.answer); got != tt.want {
				t.Errorf("Score(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestScoreUnknownTypeIsIncorrect(t *testing.T) {
	svc := NewScoringService()
	question := model.Question{Type: "SHORT_ANSWER", CorrectAnswer: "x"}
	if svc.Score(&question, "x") {
		t.Errorf("expected unknown question type to score incorrect")
	}
}
