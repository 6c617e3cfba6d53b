package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
	"github.com/this4dani/crochet-glossary-api/internal/infra/postgres"
)

var ErrSessionNotFound = errors.New("quiz session not found")

// QuizRepository provides access to quiz session and answer data in the database.
type QuizRepository struct {
	db postgres.DBTX
}

// NewQuizRepository creates a new QuizRepository with the provided database pool.
func NewQuizRepository(db postgres.DBTX) *QuizRepository {
	return &QuizRepository{db: db}
}

// Create inserts a new quiz session and returns its ID.
func (r *QuizRepository) Create(ctx context.Context, session *entities.QuizSession) (int64, error) {
	query := `
		INSERT INTO quiz_sessions (
			user_id, package_key, current_question_num, correct_answers,
			score, total_questions, session_status, started_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(
		ctx,
		query,
		session.UserID,
		session.PackageKey,
		session.CurrentQuestionNum,
		session.CorrectAnswers,
		session.Score,
		session.TotalQuestions,
		session.SessionStatus,
		session.StartedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create quiz session: %w", err)
	}

	return id, nil
}

// GetByID retrieves a session owned by the given user.
func (r *QuizRepository) GetByID(ctx context.Context, sessionID, userID int64) (*entities.QuizSession, error) {
	query := `
		SELECT id, user_id, package_key, current_question_num, correct_answers,
		       score, total_questions, session_status, started_at, completed_at
		FROM quiz_sessions
		WHERE id = $1 AND user_id = $2
	`

	var session entities.QuizSession
	err := r.db.QueryRow(ctx, query, sessionID, userID).Scan(
		&session.ID,
		&session.UserID,
		&session.PackageKey,
		&session.CurrentQuestionNum,
		&session.CorrectAnswers,
		&session.Score,
		&session.TotalQuestions,
		&session.SessionStatus,
		&session.StartedAt,
		&session.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get quiz session: %w", err)
	}

	return &session, nil
}

// Update persists the progress counters and status of a session.
func (r *QuizRepository) Update(ctx context.Context, session *entities.QuizSession) error {
	query := `
		UPDATE quiz_sessions
		SET current_question_num = $1,
		    correct_answers = $2,
		    score = $3,
		    session_status = $4,
		    completed_at = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(
		ctx,
		query,
		session.CurrentQuestionNum,
		session.CorrectAnswers,
		session.Score,
		session.SessionStatus,
		session.CompletedAt,
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("update quiz session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// SaveAnswer records a user's answer to one session question.
func (r *QuizRepository) SaveAnswer(ctx context.Context, answer *entities.QuizAnswer) error {
	query := `
		INSERT INTO quiz_answers (
			user_id, session_id, term_id, question_type,
			user_answer, correct_answer, is_correct, answered_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(
		ctx,
		query,
		answer.UserID,
		answer.SessionID,
		answer.TermID,
		answer.QuestionType,
		answer.UserAnswer,
		answer.CorrectAnswer,
		answer.IsCorrect,
		answer.AnsweredAt,
	)
	if err != nil {
		return fmt.Errorf("save answer: %w", err)
	}

	return nil
}
