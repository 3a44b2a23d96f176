package domain

import "time"

type User struct {
	ID        int64
	UserID    string
	Name      string
	Email     string
	CreatedAt time.Time
}
