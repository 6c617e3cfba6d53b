package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
)

type QuizRepository interface {
	Create(ctx context.Context, s *entities.QuizSession) (int64, error)
	GetByID(ctx context.Context, sessionID, userID int64) (*entities.QuizSession, error)
	Update(ctx context.Context, s *entities.QuizSession) error
	SaveAnswer(ctx context.Context, a *entities.QuizAnswer) error
}

// QuizService runs interactive practice sessions over the compiled
// quiz packages.
type QuizService struct {
	packages         map[string]entities.QuizPackage
	quizRepo         QuizRepository
	sessionQuestions int

	rng *rand.Rand
}

// NewQuizService creates a quiz service over the given compile result.
// sessionQuestions caps how many questions one session asks.
func NewQuizService(result *CompileResult, quizRepo QuizRepository, sessionQuestions int) *QuizService {
	packages := make(map[string]entities.QuizPackage, len(result.Packages))
	for _, p := range result.Packages {
		packages[p.Key] = p
	}

	if sessionQuestions <= 0 {
		sessionQuestions = 5
	}

	return &QuizService{
		packages:         packages,
		quizRepo:         quizRepo,
		sessionQuestions: sessionQuestions,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// PackageKeys returns the keys of the packages available for practice,
// in tier order.
func (s *QuizService) PackageKeys() []string {
	ordered := []string{
		entities.PackageKeyBeginner,
		entities.PackageKeyIntermediate,
		entities.PackageKeyAdvanced,
		entities.PackageKeyMaster,
	}

	out := make([]string, 0, len(s.packages))
	for _, key := range ordered {
		if _, ok := s.packages[key]; ok {
			out = append(out, key)
		}
	}
	return out
}

// Package returns the package with the given key.
func (s *QuizService) Package(key string) (entities.QuizPackage, bool) {
	p, ok := s.packages[key]
	return p, ok
}

// StartQuiz creates a session over the chosen package and prepares its
// questions: a shuffled draw from the package, each with a shuffled
// option set.
func (s *QuizService) StartQuiz(
	ctx context.Context, userID int64, packageKey string,
) (*entities.QuizSession, []entities.SessionQuestion, error) {
	pkg, ok := s.packages[packageKey]
	if !ok || len(pkg.Questions) == 0 {
		return nil, nil, ErrNoQuestionsAvailable
	}

	drawn := make([]entities.Question, len(pkg.Questions))
	copy(drawn, pkg.Questions)
	s.rng.Shuffle(len(drawn), func(i, j int) {
		drawn[i], drawn[j] = drawn[j], drawn[i]
	})
	if len(drawn) > s.sessionQuestions {
		drawn = drawn[:s.sessionQuestions]
	}

	questions := make([]entities.SessionQuestion, 0, len(drawn))
	for _, q := range drawn {
		options, correctIndex := s.buildOptions(q)
		questions = append(questions, entities.SessionQuestion{
			Question:     q,
			Options:      options,
			CorrectIndex: correctIndex,
		})
	}

	session := entities.NewQuizSession(userID, packageKey, len(questions))
	id, err := s.quizRepo.Create(ctx, session)
	if err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}
	session.ID = id

	return session, questions, nil
}

// GetSession retrieves a session owned by the user.
func (s *QuizService) GetSession(ctx context.Context, sessionID, userID int64) (*entities.QuizSession, error) {
	return s.quizRepo.GetByID(ctx, sessionID, userID)
}

// CheckAndSaveAnswer records the picked option, updates the session
// counters, and completes the session after its last question.
func (s *QuizService) CheckAndSaveAnswer(
	ctx context.Context,
	userID int64,
	session *entities.QuizSession,
	q entities.SessionQuestion,
	selectedIndex int,
) (*entities.QuizAnswer, error) {
	if selectedIndex < 0 || selectedIndex >= len(q.Options) {
		return nil, fmt.Errorf("invalid selected index %d", selectedIndex)
	}

	qa := entities.NewQuizAnswer(userID, session.ID, q.Question.TermID, q.Question.Type)
	qa.CheckAnswer(q.Options[selectedIndex], q.Question.Answer)

	if err := s.quizRepo.SaveAnswer(ctx, qa); err != nil {
		return nil, err
	}

	if qa.IsCorrect {
		session.CorrectAnswers++
		session.Score += q.Question.Points
	}
	session.CurrentQuestionNum++
	if session.CurrentQuestionNum > session.TotalQuestions {
		session.Complete()
	}

	if err := s.quizRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	return qa, nil
}

// buildOptions shuffles the answer in with its distractors and reports
// where the answer landed.
func (s *QuizService) buildOptions(q entities.Question) ([]string, int) {
	options := make([]string, 0, q.OptionCount())
	options = append(options, q.Answer)
	options = append(options, q.Distractors...)

	s.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, opt := range options {
		if opt == q.Answer {
			correctIndex = i
			break
		}
	}

	return options, correctIndex
}
