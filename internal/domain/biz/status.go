// Package biz holds the types shared by every business vertical: the
// response envelope returned by services, service statuses and field-level
// validation failures.
package biz

type ServiceStatus string

const (
	StatusCreated               ServiceStatus = "Created"
	StatusModified              ServiceStatus = "Modified"
	StatusDeleted               ServiceStatus = "Deleted"
	StatusSpecificItemFound     ServiceStatus = "SpecificItemFound"
	StatusSpecificItemNotFound  ServiceStatus = "SpecificItemNotFound"
	StatusMatchingItemsFound    ServiceStatus = "MatchingItemsFound"
	StatusMatchingItemsNotFound ServiceStatus = "MatchingItemsNotFound"
	StatusValidationFailed      ServiceStatus = "ValidationFailed"
)

// InstanceState tells a validator whether the candidate is about to be created
// or is an existing record being modified.
type InstanceState int

const (
	StateNew InstanceState = iota
	StateExisting
)

func (s InstanceState) String() string {
	if s == StateExisting {
		return "Existing"
	}
	return "New"
}

type ValidationFailure struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewValidationFailure(field, message string) ValidationFailure {
	return ValidationFailure{Field: field, Message: message}
}
