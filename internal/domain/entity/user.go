package entity

import "time"

// User is the owner of schedules and channel settings. The engine only reads
// the timezone; accounts are managed elsewhere.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Timezone  string    `json:"timezone" db:"timezone"` // IANA name, empty means UTC
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
