// Package domain contains entities without logic, just meta-data.
package domain

import "errors"

const MaxNameLen = 36

var (
	ErrNameEmpty   = errors.New("name empty")
	ErrNameTooLong = errors.New("name too long")
)

// ConnID identifies a single transport connection. A user that
// reconnects gets a new ConnID under the same display name.
type ConnID string

type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// User is a presence entry. The display name is not guaranteed unique;
// ConnID always points at the most recent connection registered under
// the name.
type User struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	ConnID ConnID `json:"id"`
}

func ValidateName(name string) error {
	if len(name) == 0 {
		return ErrNameEmpty
	}
	if len(name) > MaxNameLen {
		return ErrNameTooLong
	}
	return nil
}
