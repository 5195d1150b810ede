package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/orgdir-lab/orgdir/pkg/domain/types"
)

// User represents a member-directory record. The JSON field names match the
// schema of the backing users document. Records are immutable once loaded;
// enrichment produces a merged copy via Merge, never an in-place update.
type User struct {
	ID           types.UserID `json:"uid"`
	DisplayName  string       `json:"displayName"`
	Email        string       `json:"email,omitempty"`
	JobTitle     string       `json:"job_title"`
	AboutMe      string       `json:"aboutMe,omitempty"`
	ThumbnailURL string       `json:"thumbnailUrl,omitempty"`
}

// Validate checks if the User record is well-formed
func (u *User) Validate() error {
	if err := u.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid user ID")
	}
	if u.DisplayName == "" {
		return goerr.New("displayName is required", goerr.V("uid", u.ID))
	}
	return nil
}

// Clone returns a copy of the record
func (u *User) Clone() *User {
	copied := *u
	return &copied
}

// Merge returns a copy of the record with profile fields filled in where the
// record itself has none. A non-empty field on the base record always wins
// over the profile's value.
func (u *User) Merge(p *Profile) *User {
	merged := u.Clone()
	if p == nil {
		return merged
	}
	if merged.AboutMe == "" {
		merged.AboutMe = p.AboutMe
	}
	if merged.ThumbnailURL == "" {
		merged.ThumbnailURL = p.ThumbnailURL
	}
	return merged
}
