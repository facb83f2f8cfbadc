package gallery

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cakeart/cakeart/internal/content"
	"github.com/cakeart/cakeart/internal/db"
)

// Store persists the working gallery list, ordered by position.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Seed fills the working list with items when it is empty.
// It reports whether anything was inserted.
func (s *Store) Seed(ctx context.Context, items []content.GalleryItem) (bool, error) {
	var seeded bool
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM gallery_items").Scan(&count); err != nil {
			return fmt.Errorf("counting gallery items: %w", err)
		}
		if count > 0 {
			return nil
		}
		seeded = true
		return insertAll(ctx, tx, items)
	})
	return seeded, err
}

// Reset replaces the whole working list with items.
func (s *Store) Reset(ctx context.Context, items []content.GalleryItem) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM gallery_items"); err != nil {
			return fmt.Errorf("clearing gallery items: %w", err)
		}
		return insertAll(ctx, tx, items)
	})
}

func insertAll(ctx context.Context, tx *sql.Tx, items []content.GalleryItem) error {
	for i, it := range items {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO gallery_items (position, src, title, tag) VALUES (?, ?, ?, ?)",
			i, it.Src, it.Title, it.Tag,
		); err != nil {
			return fmt.Errorf("inserting gallery item %q: %w", it.Src, err)
		}
	}
	return nil
}

// List returns the working list in display order.
func (s *Store) List(ctx context.Context) ([]content.GalleryItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT src, title, tag FROM gallery_items ORDER BY position, id")
	if err != nil {
		return nil, fmt.Errorf("listing gallery items: %w", err)
	}
	defer rows.Close()

	items := []content.GalleryItem{}
	for rows.Next() {
		var it content.GalleryItem
		if err := rows.Scan(&it.Src, &it.Title, &it.Tag); err != nil {
			return nil, fmt.Errorf("scanning gallery item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Add validates item and appends it to the end of the working list.
func (s *Store) Add(ctx context.Context, item content.GalleryItem) (content.GalleryItem, error) {
	if err := Validate(item); err != nil {
		return content.GalleryItem{}, err
	}
	item = Normalize(item)

	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var next sql.NullInt64
		if err := tx.QueryRowContext(ctx, "SELECT MAX(position) + 1 FROM gallery_items").Scan(&next); err != nil {
			return fmt.Errorf("reading next position: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO gallery_items (position, src, title, tag) VALUES (?, ?, ?, ?)",
			next.Int64, item.Src, item.Title, item.Tag,
		); err != nil {
			return fmt.Errorf("inserting gallery item: %w", err)
		}
		return nil
	})
	if err != nil {
		return content.GalleryItem{}, err
	}
	return item, nil
}

// Delete removes every item whose src equals src and returns how many were removed.
// Deleting an unknown src is not an error.
func (s *Store) Delete(ctx context.Context, src string) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM gallery_items WHERE src = ?", src)
	if err != nil {
		return 0, fmt.Errorf("deleting gallery item: %w", err)
	}
	return res.RowsAffected()
}
