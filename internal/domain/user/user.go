package user

import (
	"fmt"
	"strings"
)

// User is the member identity attached to a session
type User struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}

// Validate checks that a session payload names a real member
func (u *User) Validate() error {
	if u.ID <= 0 {
		return fmt.Errorf("invalid user ID: %d", u.ID)
	}
	if strings.TrimSpace(u.Nickname) == "" {
		return fmt.Errorf("user %d has no nickname", u.ID)
	}
	return nil
}
