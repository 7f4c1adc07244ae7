package domain

import "time"

type ID string

type User struct {
	ID        ID
	Username  string
	Password  string
	CreatedAt time.Time
}
