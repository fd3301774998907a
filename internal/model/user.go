// Package model defines domain entities for the application.
package model

// User is the record returned by a user lookup.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CachedUser is the Redis hash representation of a User.
// The ID is carried by the cache key.
type CachedUser struct {
	Name string
}

// ToCachedUser converts a User to its cached form.
func (u *User) ToCachedUser() *CachedUser {
	return &CachedUser{Name: u.Name}
}

// ToUser rebuilds a User from its cached form.
func (c *CachedUser) ToUser(id int64) *User {
	return &User{ID: id, Name: c.Name}
}
