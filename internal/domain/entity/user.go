// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the platform. The password is never
// stored in plaintext; PasswordHash is assigned once during registration.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The user's email, unique across the system and used as the login identifier.
	Name         string    // The user's display name.
	PasswordHash string    // The bcrypt hash of the user's password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this record.
}

// AccountDetails is the one-to-one companion record of a User, keyed by the
// user's id. It is created by registration immediately after the user record
// and never independently; a user has at most one.
type AccountDetails struct {
	UserID       uuid.UUID // Foreign key to the owning User; also the primary key.
	ReferralCode string    // Short code other people use to join through this user.
	Headline     string    // One-line professional headline.
	Location     string    // Free-form location, e.g. "Berlin, Germany".
	Company      string    // Current company or organization.
	Bio          string    // Longer free-form description.
	Skills       []string  // Skill tags, stored as a JSON document.
	Links        []Link    // Social / portfolio links, stored as a JSON document.
	UpdatedAt    time.Time // Timestamp of the last modification to this record.
}

// Link is a labeled URL inside AccountDetails.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}
