package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered account. Users are immutable after signup and are
// referenced by authors and books through CreatorID.
type User struct {
	ID        primitive.ObjectID `bson:"_id"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"` // bcrypt hash, never returned
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Age       int                `bson:"age"`
}

// UserReply is the externally visible shape of a User. The password hash is
// deliberately absent.
type UserReply struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
}

// NewUser mints a fresh identity and builds the record. The password must
// already be hashed by the caller.
func NewUser(email, hashedPassword, firstName, lastName string, age int) *User {
	return &User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
	}
}

func (u *User) Reply() *UserReply {
	return &UserReply{
		ID:        u.ID.Hex(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       u.Age,
	}
}
