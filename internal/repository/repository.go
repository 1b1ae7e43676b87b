// Package repository is the data access layer over the three collections:
// user, post and comment. Foreign keys are raw ObjectID references resolved
// by lookup; there are no database-level joins.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/pllus/social-api/internal/model"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

type UserStore interface {
	Create(ctx context.Context, u *model.User) (bson.ObjectID, error)
	ByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	ByEmail(ctx context.Context, email string) (*model.User, error)
	// Update writes the full document back, replacing the stored one.
	Update(ctx context.Context, u *model.User) error
}

type PostStore interface {
	Create(ctx context.Context, p *model.Post) (bson.ObjectID, error)
	ByID(ctx context.Context, id bson.ObjectID) (*model.Post, error)
	// ByAuthor returns the author's posts newest first.
	ByAuthor(ctx context.Context, author bson.ObjectID) ([]model.Post, error)
	Update(ctx context.Context, p *model.Post) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

type CommentStore interface {
	Create(ctx context.Context, cm *model.Comment) (bson.ObjectID, error)
	// ByPost returns a post's comments in creation order.
	ByPost(ctx context.Context, post bson.ObjectID) ([]model.Comment, error)
}
