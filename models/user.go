// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account entity of the user directory.
// Username is unique within the directory.
type User struct {
	// ID is the directory-assigned identifier.
	ID int64 `json:"id"`

	// Username is the unique, case-sensitive login name.
	Username string `json:"username"`

	// DisplayName is the non-sensitive name shown to other users.
	DisplayName string `json:"displayName"`

	// Password holds the stored credential: plaintext in the in-memory
	// directory, a bcrypt hash in the persisted one. Never serialized.
	Password string `json:"-"`
}

// TableName returns the name of the database table associated with User.
func (u User) TableName() string {
	return "users"
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewUser is the body of user creation and full replacement requests.
type NewUser struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

// UserPatch is the body of a partial user update. Empty fields are kept.
type UserPatch struct {
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Password    string `json:"password,omitempty"`
}

// UserFilter narrows a user listing to records whose Field contains Value.
// A zero UserFilter matches everything.
type UserFilter struct {
	Field string
	Value string
}

// UserQuery holds the raw listing query parameters; nil means absent.
type UserQuery struct {
	Filter *string
	Value  *string
}

// ToFilter converts q into a directory filter. It narrows the listing only
// when both parameters are present.
func (q UserQuery) ToFilter() UserFilter {
	if q.Filter == nil || q.Value == nil {
		return UserFilter{}
	}

	return UserFilter{Field: *q.Filter, Value: *q.Value}
}
