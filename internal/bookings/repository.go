// Package bookings handles booking intake from the public site.
package bookings

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// StatusReceived is the status of every freshly created booking; dispatch
// tooling moves it along from there.
const StatusReceived = "received"

// Booking is one service booking request from a visitor.
type Booking struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	Pincode    string    `json:"pincode"`
	ServiceID  int64     `json:"service_id"`
	Status     string    `json:"status"`
	AssignedTo string    `json:"assigned_to,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Repository provides persistence for bookings.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repository over an open database handle.
func NewRepository(db *sql.DB) *Repository {
	if db == nil {
		panic("bookings: database handle required")
	}
	return &Repository{db: db}
}

// Insert stores a new booking row.
func (r *Repository) Insert(ctx context.Context, b *Booking) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bookings (id, name, phone, address, pincode, service_id, status, assigned_to, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Name, b.Phone, b.Address, b.Pincode, b.ServiceID, b.Status, b.AssignedTo,
		b.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("bookings: insert %s: %w", b.ID, err)
	}
	return nil
}

// Get loads a booking by id.
func (r *Repository) Get(ctx context.Context, id string) (*Booking, error) {
	var (
		b          Booking
		assignedTo sql.NullString
		createdAt  string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, phone, address, pincode, service_id, status, assigned_to, created_at
		 FROM bookings WHERE id = ?`, id).
		Scan(&b.ID, &b.Name, &b.Phone, &b.Address, &b.Pincode, &b.ServiceID, &b.Status, &assignedTo, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("bookings: get %s: %w", id, err)
	}
	b.AssignedTo = assignedTo.String
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		b.CreatedAt = t
	}
	return &b, nil
}
