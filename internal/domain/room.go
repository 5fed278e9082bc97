package domain

import "time"

// Room a kennel room of a boarding organisation
type Room struct {
	ID        int64
	OrgID     int64
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
