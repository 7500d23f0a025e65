// Package store persists saved wheel definitions.
//
// A saved wheel is a named manifest a user wants to render again later.
// The Store interface has two implementations:
//   - memory: in-memory storage for development/testing
//   - mongo: MongoDB-backed storage for the preview server
//
// Documents carry the raw manifest TOML so the render pipeline can
// replay them byte-for-byte; edits replace the whole document.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/soleren/mandala/pkg/errors"
)

// Wheel is a saved wheel definition.
type Wheel struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Owner     string    `json:"owner,omitempty" bson:"owner,omitempty"`
	Manifest  []byte    `json:"manifest" bson:"manifest"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Store is the interface for wheel storage backends.
type Store interface {
	// Get retrieves a wheel by ID. Returns a WHEEL_NOT_FOUND error if
	// no wheel has that ID.
	Get(ctx context.Context, id string) (*Wheel, error)

	// List returns all wheels owned by owner, newest first. An empty
	// owner lists every wheel.
	List(ctx context.Context, owner string) ([]*Wheel, error)

	// Save inserts or replaces a wheel and bumps UpdatedAt.
	Save(ctx context.Context, w *Wheel) error

	// Delete removes a wheel. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// New creates a wheel document with a fresh ID and timestamps.
func New(name, owner string, manifest []byte) *Wheel {
	now := time.Now().UTC()
	return &Wheel{
		ID:        uuid.NewString(),
		Name:      name,
		Owner:     owner,
		Manifest:  manifest,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeWheelNotFound, "wheel %s not found", id)
}
