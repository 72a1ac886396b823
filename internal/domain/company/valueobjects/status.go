package valueobjects

import "fmt"

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	// StatusDeleting marks a tenant whose offboarding run has started.
	// Readers may still observe partial data under it.
	StatusDeleting Status = "deleting"
)

var validStatuses = map[Status]bool{
	StatusActive:    true,
	StatusSuspended: true,
	StatusDeleting:  true,
}

func NewStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid company status: %s", value)
	}
	return s, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsActive() bool {
	return s == StatusActive
}
