package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	ProfilePhoto string
	PasswordHash string // bcrypt encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the public projection of a user. It never carries the
// password hash.
type Profile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
}

// Summary is the reduced projection used in follower/following and search
// listings.
type Summary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
}

func (u User) Profile() Profile {
	return Profile{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		ProfilePhoto: u.ProfilePhoto,
	}
}

func (u User) Summary() Summary {
	return Summary{
		ID:           u.ID,
		Name:         u.Name,
		ProfilePhoto: u.ProfilePhoto,
	}
}

// UserUpdate carries the mutable user fields; nil means leave unchanged.
type UserUpdate struct {
	Name         *string
	Email        *string
	ProfilePhoto *string
	PasswordHash *string
}
