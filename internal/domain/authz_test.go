package domain_test

import (
	"testing"

	"github.com/dom/dev-network/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanModifyProfile(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	assert.True(t, domain.CanModifyProfile(owner, owner))
	assert.False(t, domain.CanModifyProfile(owner, stranger))
}

func TestCanDeletePost(t *testing.T) {
	author := uuid.New()
	stranger := uuid.New()

	assert.True(t, domain.CanDeletePost(author, author))
	assert.False(t, domain.CanDeletePost(author, stranger))
}

func TestCanRemoveComment(t *testing.T) {
	postAuthor := uuid.New()
	commentAuthor := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name   string
		caller uuid.UUID
		want   bool
	}{
		{name: "post author may remove any comment", caller: postAuthor, want: true},
		{name: "comment author may retract their comment", caller: commentAuthor, want: true},
		{name: "unrelated user is denied", caller: stranger, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.CanRemoveComment(postAuthor, commentAuthor, tt.caller)
			assert.Equal(t, tt.want, got)
		})
	}
}
