// Package catalog serves the bookable service catalog.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// Service is one bookable service offered on the site. StartingPrice is a
// display string (currency included) and is never parsed.
type Service struct {
	ID            int64  `json:"id"`
	Key           string `json:"key"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	StartingPrice string `json:"starting_price"`
}

// Repository provides read access to the service catalog.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repository over an open database handle.
func NewRepository(db *sql.DB) *Repository {
	if db == nil {
		panic("catalog: database handle required")
	}
	return &Repository{db: db}
}

// List returns all services ordered by id; the page renders them as-is.
func (r *Repository) List(ctx context.Context) ([]Service, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, key, title, description, starting_price FROM services ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("catalog: list services: %w", err)
	}
	defer rows.Close()

	var services []Service
	for rows.Next() {
		var svc Service
		if err := rows.Scan(&svc.ID, &svc.Key, &svc.Title, &svc.Description, &svc.StartingPrice); err != nil {
			return nil, fmt.Errorf("catalog: scan service: %w", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: iterate services: %w", err)
	}
	return services, nil
}

// Get returns one service by id, or sql.ErrNoRows wrapped when absent.
func (r *Repository) Get(ctx context.Context, id int64) (*Service, error) {
	var svc Service
	err := r.db.QueryRowContext(ctx,
		`SELECT id, key, title, description, starting_price FROM services WHERE id = ?`, id).
		Scan(&svc.ID, &svc.Key, &svc.Title, &svc.Description, &svc.StartingPrice)
	if err != nil {
		return nil, fmt.Errorf("catalog: get service %d: %w", id, err)
	}
	return &svc, nil
}
