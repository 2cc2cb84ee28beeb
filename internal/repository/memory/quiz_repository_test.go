package memory

import (
	"errors"
	"sync"
	"testing"

	"github.com/lshigami/QuizMe/internal/model"
)

func newQuizStore() (*QuizRepository, *QuestionRepository) {
	questions := NewQuestionRepository()
	return NewQuizRepository(questions), questions
}

func TestQuizCreateAssignsIDAndCode(t *testing.T) {
	quizzes, _ := newQuizStore()

	first := model.Quiz{Title: "Capitals"}
	if err := quizzes.Create(&first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("first quiz id = %d, want 1", first.ID)
	}
	if len(first.Code) != 6 {
		t.Errorf("code %q, want 6 characters", first.Code)
	}
	for _, r := range first.Code {
		if !(r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			t.Errorf("code %q contains character %q outside A-Z0-9", first.Code, r)
		}
	}
	if first.CreatedAt.IsZero() {
		t.Errorf("expected CreatedAt to be set")
	}

	second := model.Quiz{Title: "Rivers"}
	if err := quizzes.Create(&second); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("second quiz id = %d, want 2", second.ID)
	}
	if second.Code == first.Code {
		t.Errorf("expected distinct codes, both %q", first.Code)
	}
}

func TestQuizConcurrentCreatesUniqueIDsAndCodes(t *testing.T) {
	quizzes, _ := newQuizStore()

	const n = 100
	created := make([]model.Quiz, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			quiz := model.Quiz{Title: "Quiz"}
			if err := quizzes.Create(&quiz); err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			created[i] = quiz
		}(i)
	}
	wg.Wait()

	ids := make(map[uint]bool, n)
	codes := make(map[string]bool, n)
	for _, quiz := range created {
		if ids[quiz.ID] {
			t.Fatalf("duplicate id %d", quiz.ID)
		}
		if codes[quiz.Code] {
			t.Fatalf("duplicate code %q", quiz.Code)
		}
		ids[quiz.ID] = true
		codes[quiz.Code] = true
	}
}

func TestQuizFindByCode(t *testing.T) {
	quizzes, questions := newQuizStore()

	quiz := model.Quiz{Title: "Capitals"}
	if err := quizzes.Create(&quiz); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := questions.Create(&model.Question{QuizID: quiz.ID, Text: "Q", Type: model.QuestionTypeTrueFalse, CorrectAnswer: "true", OrderInQuiz: 1}); err != nil {
		t.Fatalf("Create question: %v", err)
	}

	found, err := quizzes.FindByCodeWithQuestions(quiz.Code)
	if err != nil {
		t.Fatalf("FindByCodeWithQuestions: %v", err)
	}
	if found.ID != quiz.ID {
		t.Errorf("found quiz %d, want %d", found.ID, quiz.ID)
	}
	if len(found.Questions) != 1 {
		t.Errorf("found %d questions, want 1", len(found.Questions))
	}

	if _, err := quizzes.FindByCodeWithQuestions("NOPE42"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("unknown code error = %v, want ErrNotFound", err)
	}
}

func TestQuizDeleteFreesCodeButNotID(t *testing.T) {
	quizzes, _ := newQuizStore()

	quiz := model.Quiz{Title: "Capitals"}
	if err := quizzes.Create(&quiz); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := quizzes.Delete(quiz.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := quizzes.FindByID(quiz.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("deleted quiz error = %v, want ErrNotFound", err)
	}
	if err := quizzes.Delete(quiz.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}

	// Ids are never reused, even after deletion.
	next := model.Quiz{Title: "Rivers"}
	if err := quizzes.Create(&next); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if next.ID != 2 {
		t.Errorf("id after delete = %d, want 2", next.ID)
	}
}

func TestQuizUpdatePreservesUnchangedFields(t *testing.T) {
	quizzes, _ := newQuizStore()

	quiz := model.Quiz{Title: "Capitals", Category: "Geography", Duration: 30}
	if err := quizzes.Create(&quiz); err != nil {
		t.Fatalf("Create: %v", err)
	}

	quiz.Title = "World Capitals"
	if err := quizzes.Update(&quiz); err != nil {
		t.Fatalf("Update: %v", err)
	}

	stored, err := quizzes.FindByID(quiz.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.Title != "World Capitals" {
		t.Errorf("title = %q, want %q", stored.Title, "World Capitals")
	}
	if stored.Category != "Geography" || stored.Duration != 30 {
		t.Errorf("unchanged fields mutated: %+v", stored)
	}
	if stored.Code != quiz.Code {
		t.Errorf("code changed on update: %q != %q", stored.Code, quiz.Code)
	}
}
