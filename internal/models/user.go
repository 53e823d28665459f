package models

// User is an account that can own favorites. The password hash never leaves the store.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// UserFields carries user attributes for create and partial update requests.
// A nil field means "not provided".
type UserFields struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
}
