package domain

import "time"

// Unit is an organizational division scoping visibility of users and events.
type Unit struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
