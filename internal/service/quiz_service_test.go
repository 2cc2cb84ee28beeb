package service

import (
	"errors"
	"testing"

	"github.com/lshigami/QuizMe/internal/dto"
	"github.com/lshigami/QuizMe/internal/model"
)

func TestCreateQuizValidation(t *testing.T) {
	tests := []struct {
		name      string
		questions []dto.QuestionCreateDTO
	}{
		{
			name: "duplicate order",
			questions: []dto.QuestionCreateDTO{
				trueFalseQuestion(1),
				multipleChoiceQuestion(1),
			},
		},
		{
			name: "multiple choice without options",
			questions: []dto.QuestionCreateDTO{
				{Text: "Pick", Type: model.QuestionTypeMultipleChoice, CorrectAnswer: "a", Order: 1},
			},
		},
		{
			name: "multiple choice without correct answer",
			questions: []dto.QuestionCreateDTO{
				{Text: "Pick", Type: model.QuestionTypeMultipleChoice, Options: []string{"a", "b"}, Order: 1},
			},
		},
		{
			name: "true/false without correct answer",
			questions: []dto.QuestionCreateDTO{
				{Text: "Claim", Type: model.QuestionTypeTrueFalse, Order: 1},
			},
		},
		{
			name: "essay with correct_answer instead of accepted_answers",
			questions: []dto.QuestionCreateDTO{
				{Text: "Essay", Type: model.QuestionTypeEssay, CorrectAnswer: "paris", Order: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			_, err := env.quizzes.CreateQuiz(dto.QuizCreateDTO{Title: "T", Questions: tt.questions})
			if !errors.Is(err, model.ErrValidation) {
				t.Fatalf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestCreateQuizAppliesDefaultDuration(t *testing.T) {
	env := newTestEnv()
	quiz, err := env.quizzes.CreateQuiz(dto.QuizCreateDTO{
		Title:     "No duration",
		Questions: []dto.QuestionCreateDTO{trueFalseQuestion(1)},
	})
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	if quiz.Duration != defaultDuration {
		t.Errorf("duration = %d, want default %d", quiz.Duration, defaultDuration)
	}
}

func TestCreateQuizReturnsQuestionsWithIDs(t *testing.T) {
	env := newTestEnv()
	quiz := env.createQuiz(t, trueFalseQuestion(1), multipleChoiceQuestion(2))

	if quiz.Code == "" {
		t.Errorf("quiz code not assigned")
	}
	if len(quiz.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(quiz.Questions))
	}
	for _, question := range quiz.Questions {
		if question.ID == 0 {
			t.Errorf("question without id: %+v", question)
		}
		if question.QuizID != quiz.ID {
			t.Errorf("question linked to quiz %d, want %d", question.QuizID, quiz.ID)
		}
	}
}

func TestGetAllQuizzesCountsQuestions(t *testing.T) {
	env := newTestEnv()
	env.createQuiz(t, trueFalseQuestion(1), multipleChoiceQuestion(2))
	env.createQuiz(t, trueFalseQuestion(1))

	summaries, err := env.quizzes.GetAllQuizzes()
	if err != nil {
		t.Fatalf("GetAllQuizzes: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	if summaries[0].QuestionCount != 2 || summaries[1].QuestionCount != 1 {
		t.Errorf("question counts = %d, %d; want 2, 1", summaries[0].QuestionCount, summaries[1].QuestionCount)
	}
}

func TestGetQuizByCode(t *testing.T) {
	env := newTestEnv()
	quiz := env.createQuiz(t, trueFalseQuestion(1))

	found, err := env.quizzes.GetQuizByCode(quiz.Code)
	if err != nil {
		t.Fatalf("GetQuizByCode: %v", err)
	}
	if found.ID != quiz.ID || len(found.Questions) != 1 {
		t.Errorf("found = %+v", found)
	}

	if _, err := env.quizzes.GetQuizByCode("ZZZZZZ"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("unknown code error = %v, want ErrNotFound", err)
	}
}

func TestDeleteQuizCascadesQuestions(t *testing.T) {
	env := newTestEnv()
	quiz := env.createQuiz(t, trueFalseQuestion(1), multipleChoiceQuestion(2))

	if err := env.quizzes.DeleteQuiz(quiz.ID); err != nil {
		t.Fatalf("DeleteQuiz: %v", err)
	}
	if _, err := env.quizzes.GetQuizByID(quiz.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("deleted quiz still retrievable: %v", err)
	}
	if err := env.quizzes.DeleteQuiz(quiz.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestGetParticipationsRequiresQuiz(t *testing.T) {
	env := newTestEnv()
	if _, err := env.quizzes.GetParticipations(55); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestGetParticipationsListsInStartOrder(t *testing.T) {
	env := newTestEnv()
	quiz := env.createQuiz(t, trueFalseQuestion(1))
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		if _, err := env.participations.Start(dto.ParticipationCreateDTO{QuizID: quiz.ID, ParticipantName: name}); err != nil {
			t.Fatalf("Start: %v", err)
		}
	}

	participations, err := env.quizzes.GetParticipations(quiz.ID)
	if err != nil {
		t.Fatalf("GetParticipations: %v", err)
	}
	if len(participations) != 3 {
		t.Fatalf("got %d participations, want 3", len(participations))
	}
	want := []string{"Alice", "Bob", "Carol"}
	for i, participation := range participations {
		if participation.ParticipantName != want[i] {
			t.Errorf("position %d is %q, want %q", i, participation.ParticipantName, want[i])
		}
	}
}
