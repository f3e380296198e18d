package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SocialLinks holds the optional social media URLs on a profile.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience is an embedded work-history entry. Entries are stored
// newest-first inside the owning profile.
type Experience struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

func (e Experience) EntryID() uuid.UUID { return e.ID }

// Education is an embedded education-history entry, ordered like Experience.
type Education struct {
	ID           uuid.UUID  `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

func (e Education) EntryID() uuid.UUID { return e.ID }

// Profile is the 1:1 professional profile owned by a user. Experience,
// education, skills and social links are embedded jsonb columns so the
// whole aggregate is written as one row. Version backs the optimistic
// concurrency check on every read-modify-write.
type Profile struct {
	ID             uuid.UUID                       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID        uuid.UUID                       `json:"user" gorm:"type:uuid;uniqueIndex;not null"`
	Status         string                          `json:"status" gorm:"not null"`
	Skills         datatypes.JSONSlice[string]     `json:"skills" gorm:"type:jsonb;default:'[]'"`
	Company        string                          `json:"company,omitempty"`
	Website        string                          `json:"website,omitempty"`
	Location       string                          `json:"location,omitempty"`
	Bio            string                          `json:"bio,omitempty"`
	GithubUsername string                          `json:"githubUsername,omitempty"`
	Social         datatypes.JSONType[SocialLinks] `json:"social" gorm:"type:jsonb"`
	Experience     datatypes.JSONSlice[Experience] `json:"experience" gorm:"type:jsonb;default:'[]'"`
	Education      datatypes.JSONSlice[Education]  `json:"education" gorm:"type:jsonb;default:'[]'"`
	Version        int64                           `json:"-" gorm:"not null;default:0"`
	CreatedAt      time.Time                       `json:"createdAt"`
	UpdatedAt      time.Time                       `json:"updatedAt"`

	// Relations
	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}
