package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Author is a book author. CreatorID records the user who created the
// record; only that user may replace or remove it.
type Author struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Surname     string             `bson:"surname"`
	Nationality string             `bson:"nationality"`
	Biography   string             `bson:"biography"`
	CreatorID   primitive.ObjectID `bson:"creatorId"`
}

// AuthorReply is the externally visible shape of an Author.
type AuthorReply struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Nationality string `json:"nationality"`
	Biography   string `json:"biography"`
	CreatorID   string `json:"creatorId"`
}

// NewAuthor mints a fresh identity and builds the record.
func NewAuthor(name, surname, nationality, biography string, creatorID primitive.ObjectID) *Author {
	return &Author{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Surname:     surname,
		Nationality: nationality,
		Biography:   biography,
		CreatorID:   creatorID,
	}
}

func (a *Author) Reply() *AuthorReply {
	return &AuthorReply{
		ID:          a.ID.Hex(),
		Name:        a.Name,
		Surname:     a.Surname,
		Nationality: a.Nationality,
		Biography:   a.Biography,
		CreatorID:   a.CreatorID.Hex(),
	}
}
