package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/dom/dev-network/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("Test User %s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Avatar:       domain.GravatarURL(b.email),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user, b.password
}

// BuildAndAuthenticate creates the user and logs in through the API,
// returning the user with a valid session token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, rawPassword := b.Build(t, ts.DB.DB)
	return user, ts.LoginAs(t, user.Email, rawPassword)
}

// ProfileBuilder creates test profiles with a builder pattern
type ProfileBuilder struct {
	ownerID    uuid.UUID
	status     string
	skills     []string
	experience []domain.Experience
	education  []domain.Education
}

// NewProfileBuilder creates a ProfileBuilder for the given owner
func NewProfileBuilder(ownerID uuid.UUID) *ProfileBuilder {
	return &ProfileBuilder{
		ownerID: ownerID,
		status:  "Developer",
		skills:  []string{"Go", "PostgreSQL"},
	}
}

// WithStatus sets the status line
func (b *ProfileBuilder) WithStatus(status string) *ProfileBuilder {
	b.status = status
	return b
}

// WithSkills sets the skill list
func (b *ProfileBuilder) WithSkills(skills ...string) *ProfileBuilder {
	b.skills = skills
	return b
}

// WithExperience prepends an experience entry
func (b *ProfileBuilder) WithExperience(title, company string) *ProfileBuilder {
	b.experience = append([]domain.Experience{{
		ID:      uuid.New(),
		Title:   title,
		Company: company,
		From:    time.Now().AddDate(-1, 0, 0),
		Current: true,
	}}, b.experience...)
	return b
}

// Build creates the profile in the database
func (b *ProfileBuilder) Build(t *testing.T, db *gorm.DB) *domain.Profile {
	t.Helper()

	profile := &domain.Profile{
		ID:         uuid.New(),
		OwnerID:    b.ownerID,
		Status:     b.status,
		Skills:     datatypes.JSONSlice[string](b.skills),
		Experience: datatypes.JSONSlice[domain.Experience](b.experience),
		Education:  datatypes.JSONSlice[domain.Education](b.education),
	}

	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}

	return profile
}

// PostBuilder creates test posts with a builder pattern
type PostBuilder struct {
	author   *domain.User
	text     string
	likes    []uuid.UUID
	comments []domain.Comment
}

// NewPostBuilder creates a PostBuilder authored by the given user
func NewPostBuilder(author *domain.User) *PostBuilder {
	return &PostBuilder{
		author: author,
		text:   "test post body",
	}
}

// WithText sets the post body
func (b *PostBuilder) WithText(text string) *PostBuilder {
	b.text = text
	return b
}

// WithLike adds a like from the given user id
func (b *PostBuilder) WithLike(userID uuid.UUID) *PostBuilder {
	b.likes = append(b.likes, userID)
	return b
}

// WithComment prepends a comment from the given user
func (b *PostBuilder) WithComment(author *domain.User, text string) *PostBuilder {
	b.comments = append([]domain.Comment{{
		ID:        uuid.New(),
		AuthorID:  author.ID,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		CreatedAt: time.Now(),
	}}, b.comments...)
	return b
}

// Build creates the post in the database
func (b *PostBuilder) Build(t *testing.T, db *gorm.DB) *domain.Post {
	t.Helper()

	post := &domain.Post{
		ID:       uuid.New(),
		AuthorID: b.author.ID,
		Text:     b.text,
		Name:     b.author.Name,
		Avatar:   b.author.Avatar,
		Likes:    datatypes.JSONSlice[uuid.UUID](b.likes),
		Comments: datatypes.JSONSlice[domain.Comment](b.comments),
	}

	if err := db.Create(post).Error; err != nil {
		t.Fatalf("failed to create test post: %v", err)
	}

	return post
}
