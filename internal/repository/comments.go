package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/pllus/social-api/internal/model"
)

type Comments struct {
	col *mongo.Collection
}

func NewComments(db *mongo.Database) *Comments {
	return &Comments{col: db.Collection("comment")}
}

func (r *Comments) Create(ctx context.Context, cm *model.Comment) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, cm)
	if err != nil {
		return bson.NilObjectID, err
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (r *Comments) ByPost(ctx context.Context, post bson.ObjectID) ([]model.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"post": post}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []model.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
