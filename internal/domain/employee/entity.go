package employee

import (
	"time"
)

type Employee struct {
	ID           string
	Name         string
	UniqueLink   string
	PasswordHash string
	Designation  string
	Email        string
	CreatedAt    time.Time
}
