// Package user implements the user directory: a key-value store of user
// records exposed over HTTP, plus the client adapter other services use to
// resolve user references.
package user

// User is a directory record. The orchestrator only ever reads it.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
