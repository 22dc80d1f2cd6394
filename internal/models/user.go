package models

import "time"

// User is a registered account. Password holds the hex SHA-256 digest, never
// the plaintext. ResetToken/ResetTokenExpires are present only between a
// password-reset request and its consumption; expired tokens are not purged,
// only rejected on use.
type User struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Password          string    `json:"password"`
	Name              string    `json:"name"`
	CreatedAt         time.Time `json:"created_at"`
	ResetToken        string    `json:"reset_token,omitempty"`
	ResetTokenExpires int64     `json:"reset_token_expires,omitempty"`
}

// UserInfo is the caller-visible projection of a user.
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u *User) Info() UserInfo {
	return UserInfo{ID: u.ID, Email: u.Email, Name: u.Name}
}
