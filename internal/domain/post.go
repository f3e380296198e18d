package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Comment is an embedded post comment, stored newest-first. Author name
// and avatar are snapshotted so rendering needs no join.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c Comment) EntryID() uuid.UUID { return c.ID }

// Post is a user-authored post. Likes are a set of user ids and comments an
// ordered list, both embedded as jsonb so the aggregate is one row. Version
// backs the optimistic concurrency check for concurrent like/comment writes.
type Post struct {
	ID        uuid.UUID                      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AuthorID  uuid.UUID                      `json:"user" gorm:"type:uuid;index;not null"`
	Text      string                         `json:"text" gorm:"not null"`
	Name      string                         `json:"name"`
	Avatar    string                         `json:"avatar"`
	Likes     datatypes.JSONSlice[uuid.UUID] `json:"likes" gorm:"type:jsonb;default:'[]'"`
	Comments  datatypes.JSONSlice[Comment]   `json:"comments" gorm:"type:jsonb;default:'[]'"`
	Version   int64                          `json:"-" gorm:"not null;default:0"`
	CreatedAt time.Time                      `json:"createdAt"`
}

// LikedBy reports whether userID is in the like set.
func (p *Post) LikedBy(userID uuid.UUID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
