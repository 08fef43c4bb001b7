package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog-cms/internal/domain"
	"catalog-cms/internal/repository"
)

const createItemsTable = `
CREATE TABLE IF NOT EXISTS items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	intro TEXT NOT NULL,
	text TEXT NOT NULL,
	price INTEGER NOT NULL,
	category TEXT NOT NULL,
	status INTEGER NOT NULL DEFAULT 1
);
`

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createItemsTable); err != nil {
		return fmt.Errorf("create items table: %w", err)
	}
	return nil
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO items (title, intro, text, price, category, status)
VALUES (?, ?, ?, ?, ?, ?)`,
		item.Title,
		item.Intro,
		item.Text,
		item.Price,
		item.Category,
		item.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("insert item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("item last insert id: %w", err)
	}
	item.ID = id
	return id, nil
}

func (r *ItemRepository) Get(ctx context.Context, id int64) (*domain.Item, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, title, intro, text, price, category, status
FROM items
WHERE id = ?`,
		id,
	)
	return scanItem(row)
}

func (r *ItemRepository) List(ctx context.Context) ([]domain.Item, error) {
	return r.list(ctx, `
SELECT id, title, intro, text, price, category, status
FROM items
ORDER BY id`)
}

func (r *ItemRepository) ListVisible(ctx context.Context) ([]domain.Item, error) {
	return r.list(ctx, `
SELECT id, title, intro, text, price, category, status
FROM items
WHERE status = 1
ORDER BY id`)
}

func (r *ItemRepository) list(ctx context.Context, query string) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// Update replaces every mutable field in one statement so a concurrent
// reader sees either all old or all new values.
func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE items
SET title = ?, intro = ?, text = ?, price = ?, category = ?, status = ?
WHERE id = ?`,
		item.Title,
		item.Intro,
		item.Text,
		item.Price,
		item.Category,
		item.Status,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update item rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update item %d: %w", item.ID, repository.ErrNotFound)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete item %d: %w", id, repository.ErrNotFound)
	}
	return nil
}

func scanItem(row interface {
	Scan(dest ...any) error
}) (*domain.Item, error) {
	var item domain.Item
	if err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Intro,
		&item.Text,
		&item.Price,
		&item.Category,
		&item.Status,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}
	return &item, nil
}
