package domain

import "time"

type Category struct {
	ID         int64
	CategoryID string
	Name       string
	CreatedAt  time.Time
}
