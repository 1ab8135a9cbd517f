package domain

import (
	"strings"

	"github.com/samber/lo"
)

type User struct {
	UserID      string
	Name        string
	MentionName string
	Status      Status
}

// UserDirectory is the full set of registered users.
type UserDirectory struct {
	Users []User
}

// Handles returns the lower-cased set of every known mention handle.
func (d UserDirectory) Handles() map[string]struct{} {
	return lo.SliceToMap(d.Users, func(u User) (string, struct{}) {
		return strings.ToLower(u.MentionName), struct{}{}
	})
}

// Lookup finds a user by mention handle, case-insensitively.
// The first matching entry wins when the directory holds duplicates.
func (d UserDirectory) Lookup(handle string) (User, bool) {
	return lo.Find(d.Users, func(u User) bool {
		return strings.EqualFold(u.MentionName, handle)
	})
}
