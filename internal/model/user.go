package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a document in the "user" collection. The followers/following
// arrays are kept mutually consistent by the follow handlers, not by the
// database.
type User struct {
	ID        bson.ObjectID   `json:"id"        bson:"_id,omitempty"`
	Name      string          `json:"name"      bson:"name"`
	Email     string          `json:"email"     bson:"email"`
	Password  string          `json:"-"         bson:"password"`
	Posts     []bson.ObjectID `json:"posts"     bson:"posts"`
	Followers []bson.ObjectID `json:"followers" bson:"followers"`
	Following []bson.ObjectID `json:"following" bson:"following"`
}
