package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Comment   string        `json:"comment"   bson:"comment"`
	Author    bson.ObjectID `json:"author"    bson:"author"`
	Post      bson.ObjectID `json:"post"      bson:"post"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
