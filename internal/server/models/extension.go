// Package models defines the server-side persistence records.
package models

import "time"

// FixedExtension is a per-user override of a fixed-catalog extension's
// block state. Unique per (UserID, Name); absence of a row means the
// extension is not blocked.
type FixedExtension struct {
	UserID    string `json:"-"`
	Name      string `json:"name"`
	IsBlocked bool   `json:"isBlocked"`
}

// CustomExtension is a user-added extension name. Name is stored in
// canonical form; uniqueness per user is enforced on the stored value.
type CustomExtension struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
