package project

import "time"

// Project is an owner-scoped document with an opaque content blob.
type Project struct {
	ID        string
	OwnerID   string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
