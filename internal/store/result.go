package store

import (
	"chicchariot/internal/models"
)

// Result is the outcome of a mutating operation. Expected validation and
// business-rule failures come back as a failed Result with a user-facing
// message, never as an error.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func ok() Result {
	return Result{Success: true}
}

func fail(message string) Result {
	return Result{Message: message}
}

// UserResult is a Result carrying the affected user, returned by the
// login-shaped auth operations.
type UserResult struct {
	Result
	User *models.User `json:"user,omitempty"`
}

func userOK(user models.User) UserResult {
	return UserResult{Result: ok(), User: &user}
}

func userFail(message string) UserResult {
	return UserResult{Result: fail(message)}
}
