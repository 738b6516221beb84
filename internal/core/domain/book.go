package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Book references its authors by identity. Deleting a referenced author is
// not guarded against; a dangling reference simply stays in AuthorsIDs.
type Book struct {
	ID            primitive.ObjectID   `bson:"_id"`
	Title         string               `bson:"title"`
	Description   string               `bson:"description"`
	NumberOfPages int                  `bson:"numberOfPages"`
	Category      string               `bson:"category"`
	AuthorsIDs    []primitive.ObjectID `bson:"authorsIds"`
	CreatorID     primitive.ObjectID   `bson:"creatorId"`
}

// BookReply is the externally visible shape of a Book.
type BookReply struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	NumberOfPages int      `json:"numberOfPages"`
	Category      string   `json:"category"`
	AuthorsIDs    []string `json:"authorsIds"`
	CreatorID     string   `json:"creatorId"`
}

// NewBook mints a fresh identity and builds the record.
func NewBook(title, description string, numberOfPages int, category string, authorsIDs []primitive.ObjectID, creatorID primitive.ObjectID) *Book {
	return &Book{
		ID:            primitive.NewObjectID(),
		Title:         title,
		Description:   description,
		NumberOfPages: numberOfPages,
		Category:      category,
		AuthorsIDs:    authorsIDs,
		CreatorID:     creatorID,
	}
}

func (b *Book) Reply() *BookReply {
	ids := make([]string, 0, len(b.AuthorsIDs))
	for _, id := range b.AuthorsIDs {
		ids = append(ids, id.Hex())
	}
	return &BookReply{
		ID:            b.ID.Hex(),
		Title:         b.Title,
		Description:   b.Description,
		NumberOfPages: b.NumberOfPages,
		Category:      b.Category,
		AuthorsIDs:    ids,
		CreatorID:     b.CreatorID.Hex(),
	}
}
