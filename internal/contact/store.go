package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cakeart/cakeart/internal/db"
)

// Store persists contact messages.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Save validates and inserts m, filling in its ID and CreatedAt.
func (s *Store) Save(ctx context.Context, m Message) (Message, error) {
	if err := m.Validate(); err != nil {
		return Message{}, err
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, body, remote_addr, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Body, m.RemoteAddr, m.CreatedAt.UTC().Format(time.DateTime),
	)
	if err != nil {
		return Message{}, fmt.Errorf("inserting contact message: %w", err)
	}
	return m, nil
}

// List returns messages newest first. A non-positive limit returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Message, error) {
	query := `SELECT id, name, email, body, remote_addr, created_at
		FROM contact_messages ORDER BY created_at DESC, rowid DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing contact messages: %w", err)
	}
	defer rows.Close()

	msgs := []Message{}
	for rows.Next() {
		var (
			m  Message
			ts string
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.RemoteAddr, &ts); err != nil {
			return nil, fmt.Errorf("scanning contact message: %w", err)
		}
		if t, err := time.Parse(time.DateTime, ts); err == nil {
			m.CreatedAt = t
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
