package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Post struct {
	ID        bson.ObjectID   `json:"id"         bson:"_id,omitempty"`
	Title     string          `json:"title"      bson:"title"`
	Desc      string          `json:"desc"       bson:"desc"`
	Author    bson.ObjectID   `json:"author"     bson:"author"`
	CreatedAt time.Time       `json:"createdAt"  bson:"created_at"`
	Likes     []bson.ObjectID `json:"likes"      bson:"likes"`
	Comments  []bson.ObjectID `json:"comments"   bson:"comments"`
}
