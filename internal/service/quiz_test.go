package service

import (
	"context"
	"errors"
	"testing"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
)

var errFakeSessionNotFound = errors.New("session not found")

// fakeQuizRepo keeps sessions and answers in memory.
type fakeQuizRepo struct {
	nextID   int64
	sessions map[int64]*entities.QuizSession
	answers  []*entities.QuizAnswer
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{sessions: make(map[int64]*entities.QuizSession)}
}

func (r *fakeQuizRepo) Create(_ context.Context, s *entities.QuizSession) (int64, error) {
	r.nextID++
	copied := *s
	copied.ID = r.nextID
	r.sessions[copied.ID] = &copied
	return copied.ID, nil
}

func (r *fakeQuizRepo) GetByID(_ context.Context, sessionID, userID int64) (*entities.QuizSession, error) {
	s, ok := r.sessions[sessionID]
	if !ok || s.UserID != userID {
		return nil, errFakeSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeQuizRepo) Update(_ context.Context, s *entities.QuizSession) error {
	copied := *s
	r.sessions[s.ID] = &copied
	return nil
}

func (r *fakeQuizRepo) SaveAnswer(_ context.Context, a *entities.QuizAnswer) error {
	r.answers = append(r.answers, a)
	return nil
}

func newTestQuizService(t *testing.T, repo QuizRepository, sessionQuestions int) *QuizService {
	t.Helper()

	result, err := Compile(sampleGlossary(), testConfig())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return NewQuizService(result, repo, sessionQuestions)
}

func TestPackageKeysOrdered(t *testing.T) {
	s := newTestQuizService(t, newFakeQuizRepo(), 5)

	want := []string{
		entities.PackageKeyBeginner,
		entities.PackageKeyIntermediate,
		entities.PackageKeyAdvanced,
	}
	got := s.PackageKeys()
	if len(got) != len(want) {
		t.Fatalf("PackageKeys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PackageKeys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStartQuiz(t *testing.T) {
	repo := newFakeQuizRepo()
	s := newTestQuizService(t, repo, 3)

	session, questions, err := s.StartQuiz(context.Background(), 42, entities.PackageKeyBeginner)
	if err != nil {
		t.Fatalf("StartQuiz() error = %v", err)
	}

	if session.ID == 0 {
		t.Error("session was not persisted")
	}
	if session.UserID != 42 {
		t.Errorf("session.UserID = %d, want 42", session.UserID)
	}
	if session.PackageKey != entities.PackageKeyBeginner {
		t.Errorf("session.PackageKey = %q, want %q", session.PackageKey, entities.PackageKeyBeginner)
	}
	if session.SessionStatus != "active" || session.CurrentQuestionNum != 1 {
		t.Errorf("new session = %+v, want active at question 1", session)
	}

	if len(questions) == 0 || len(questions) > 3 {
		t.Fatalf("got %d questions, want 1..3", len(questions))
	}
	if session.TotalQuestions != len(questions) {
		t.Errorf("session.TotalQuestions = %d, want %d", session.TotalQuestions, len(questions))
	}

	for _, q := range questions {
		if len(q.Options) != q.Question.OptionCount() {
			t.Errorf("question %s: %d options, want %d", q.Question.ID, len(q.Options), q.Question.OptionCount())
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			t.Fatalf("question %s: correct index %d out of range", q.Question.ID, q.CorrectIndex)
		}
		if q.Options[q.CorrectIndex] != q.Question.Answer {
			t.Errorf("question %s: option %d = %q, want the answer %q",
				q.Question.ID, q.CorrectIndex, q.Options[q.CorrectIndex], q.Question.Answer)
		}
	}
}

func TestStartQuizUnknownPackage(t *testing.T) {
	s := newTestQuizService(t, newFakeQuizRepo(), 5)

	if _, _, err := s.StartQuiz(context.Background(), 42, "nope"); err != ErrNoQuestionsAvailable {
		t.Errorf("StartQuiz() error = %v, want ErrNoQuestionsAvailable", err)
	}
}

func TestCheckAndSaveAnswer(t *testing.T) {
	repo := newFakeQuizRepo()
	s := newTestQuizService(t, repo, 2)
	ctx := context.Background()

	session, questions, err := s.StartQuiz(ctx, 42, entities.PackageKeyBeginner)
	if err != nil {
		t.Fatalf("StartQuiz() error = %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}

	// Correct answer on the first question.
	first := questions[0]
	answer, err := s.CheckAndSaveAnswer(ctx, 42, session, first, first.CorrectIndex)
	if err != nil {
		t.Fatalf("CheckAndSaveAnswer() error = %v", err)
	}
	if !answer.IsCorrect {
		t.Error("correct option was judged wrong")
	}
	if answer.TermID != first.Question.TermID || answer.QuestionType != first.Question.Type {
		t.Errorf("answer records term %q/%q, want %q/%q",
			answer.TermID, answer.QuestionType, first.Question.TermID, first.Question.Type)
	}
	if session.CorrectAnswers != 1 || session.Score != first.Question.Points {
		t.Errorf("session counters = %d correct / %d points, want 1 / %d",
			session.CorrectAnswers, session.Score, first.Question.Points)
	}
	if session.SessionStatus != "active" || session.CurrentQuestionNum != 2 {
		t.Errorf("session = %+v, want active at question 2", session)
	}

	// Wrong answer on the last question completes the session.
	second := questions[1]
	wrongIndex := (second.CorrectIndex + 1) % len(second.Options)
	answer, err = s.CheckAndSaveAnswer(ctx, 42, session, second, wrongIndex)
	if err != nil {
		t.Fatalf("CheckAndSaveAnswer() error = %v", err)
	}
	if answer.IsCorrect {
		t.Error("wrong option was judged correct")
	}
	if session.Score != first.Question.Points {
		t.Errorf("score changed on a wrong answer: %d", session.Score)
	}
	if session.SessionStatus != "completed" || session.CompletedAt == nil {
		t.Errorf("session = %+v, want completed with a timestamp", session)
	}

	if len(repo.answers) != 2 {
		t.Errorf("repository holds %d answers, want 2", len(repo.answers))
	}
	stored, err := s.GetSession(ctx, session.ID, 42)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if stored.SessionStatus != "completed" {
		t.Errorf("persisted session status = %q, want completed", stored.SessionStatus)
	}
}

func TestCheckAndSaveAnswerRejectsBadIndex(t *testing.T) {
	s := newTestQuizService(t, newFakeQuizRepo(), 2)
	ctx := context.Background()

	session, questions, err := s.StartQuiz(ctx, 42, entities.PackageKeyBeginner)
	if err != nil {
		t.Fatalf("StartQuiz() error = %v", err)
	}

	if _, err := s.CheckAndSaveAnswer(ctx, 42, session, questions[0], len(questions[0].Options)); err == nil {
		t.Error("expected an error for an out-of-range option index")
	}
	if _, err := s.CheckAndSaveAnswer(ctx, 42, session, questions[0], -1); err == nil {
		t.Error("expected an error for a negative option index")
	}
}
