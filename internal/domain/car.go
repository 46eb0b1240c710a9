package domain

import "time"

type Car struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Model     string    `json:"model"`
	Plate     string    `json:"plate"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCarInput struct {
	Name     string
	Model    string
	Plate    string
	IsActive *bool
}
