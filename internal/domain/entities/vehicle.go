package entities

import "time"

type Vehicle struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Plate     string    `json:"plate"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Year      int       `json:"year,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
