package domain

import "github.com/google/uuid"

// Ownership rules. Pure decision functions: resource metadata plus the
// caller id in, allow/deny out. No rule here performs I/O.

// CanModifyProfile allows only the profile's owner.
func CanModifyProfile(profileOwner, callerID uuid.UUID) bool {
	return profileOwner == callerID
}

// CanDeletePost allows only the post's author.
func CanDeletePost(postAuthor, callerID uuid.UUID) bool {
	return postAuthor == callerID
}

// CanRemoveComment allows the post's author (may moderate any comment on
// their post) or the comment's author (may retract their own comment).
func CanRemoveComment(postAuthor, commentAuthor, callerID uuid.UUID) bool {
	return callerID == postAuthor || callerID == commentAuthor
}
