package domain

import "time"

type Driver struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	License   string    `json:"license"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateDriverInput struct {
	Name     string
	License  string
	IsActive *bool
}
