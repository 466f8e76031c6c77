package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists the quiz document in SQLite, an alternative to the
// JSON file store for deployments that want durable answer submissions.
// The document semantics stay wholesale: Save replaces the entire
// question set in one transaction.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		path = "quiz.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS questions (
		question_id INTEGER PRIMARY KEY,
		prompt TEXT NOT NULL,
		options_json TEXT NOT NULL,
		correct_letter TEXT NOT NULL,
		user_answer_letter TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL
	);`)
	return err
}

func (s *SQLiteStore) Load(ctx context.Context) ([]Question, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT question_id, prompt, options_json, correct_letter, user_answer_letter
		 FROM questions
		 ORDER BY position ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]Question, 0)
	for rows.Next() {
		var (
			question    Question
			optionsJSON string
		)
		if err := rows.Scan(&question.ID, &question.Question, &optionsJSON, &question.CorrectAnswer, &question.UserAnswer); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(optionsJSON), &question.Options); err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		return nil, ErrQuizNotFound
	}
	return questions, nil
}

func (s *SQLiteStore) Save(ctx context.Context, questions []Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return err
	}

	for idx, question := range questions {
		optionsJSON, err := json.Marshal(question.Options)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO questions (question_id, prompt, options_json, correct_letter, user_answer_letter, position)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			question.ID,
			question.Question,
			string(optionsJSON),
			question.CorrectAnswer,
			question.UserAnswer,
			idx,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Seed stores the given questions only when the database is empty, so a
// bundled quiz file can initialize a fresh SQLite store without clobbering
// submitted answers on restart.
func (s *SQLiteStore) Seed(ctx context.Context, questions []Question) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.Save(ctx, questions)
}
