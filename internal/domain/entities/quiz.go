package entities

import (
	"strings"
	"time"
)

// Package keys and display names, one per difficulty tier plus the
// mixed package used when grouping by difficulty is disabled.
const (
	PackageKeyBeginner     = "beginner_pack"
	PackageKeyIntermediate = "intermediate_pack"
	PackageKeyAdvanced     = "advanced_pack"
	PackageKeyMaster       = "master_challenge"
)

// QuizPackage is a named, difficulty-scoped grouping of questions.
// Question order follows the authoring order of the source terms.
type QuizPackage struct {
	Key            string     `json:"-"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Difficulty     Difficulty `json:"difficulty,omitempty"`
	TotalQuestions int        `json:"total_questions"`
	TotalPoints    int        `json:"total_points"`
	Questions      []Question `json:"questions"`
}

// QuizSession represents a single interactive quiz run for a user.
type QuizSession struct {
	ID                 int64      // unique session ID
	UserID             int64      // user who started the quiz
	PackageKey         string     // quiz package the questions were drawn from
	CurrentQuestionNum int        // current question number in the quiz
	CorrectAnswers     int        // number of correct answers so far
	Score              int        // points collected so far
	TotalQuestions     int        // total number of questions in the quiz
	SessionStatus      string     // "active", "completed", or "abandoned"
	StartedAt          time.Time  // when the quiz started
	CompletedAt        *time.Time // when the quiz was completed (nullable)
}

// NewQuizSession creates an active session over the given package.
func NewQuizSession(userID int64, packageKey string, totalQuestions int) *QuizSession {
	return &QuizSession{
		UserID:             userID,
		PackageKey:         packageKey,
		CurrentQuestionNum: 1,
		TotalQuestions:     totalQuestions,
		SessionStatus:      "active",
		StartedAt:          time.Now(),
	}
}

// Complete marks the quiz session as completed and sets the completion timestamp.
func (qs *QuizSession) Complete() {
	qs.SessionStatus = "completed"
	now := time.Now()
	qs.CompletedAt = &now
}

// SessionQuestion is a compiled question prepared for one interactive
// session: options are the answer and distractors in presentation order.
type SessionQuestion struct {
	Question     Question
	Options      []string
	CorrectIndex int
}

// QuizAnswer represents a user's answer to one session question.
type QuizAnswer struct {
	ID            int64        // unique answer ID
	UserID        int64        // user who answered
	SessionID     int64        // quiz session ID
	TermID        string       // id of the source term
	QuestionType  QuestionType // kind of the answered question
	UserAnswer    string       // option the user picked
	CorrectAnswer string       // correct answer
	IsCorrect     bool         // whether the answer was correct
	AnsweredAt    time.Time    // when the answer was submitted
}

// NewQuizAnswer creates an answer record for a session question.
func NewQuizAnswer(userID, sessionID int64, termID string, questionType QuestionType) *QuizAnswer {
	return &QuizAnswer{
		UserID:       userID,
		SessionID:    sessionID,
		TermID:       termID,
		QuestionType: questionType,
		AnsweredAt:   time.Now(),
	}
}

// CheckAnswer sets the user's answer, correct answer, and determines correctness.
func (qa *QuizAnswer) CheckAnswer(userAnswer, correctAnswer string) {
	qa.UserAnswer = userAnswer
	qa.CorrectAnswer = correctAnswer
	qa.IsCorrect = strings.EqualFold(
		strings.TrimSpace(userAnswer),
		strings.TrimSpace(correctAnswer),
	)
}
