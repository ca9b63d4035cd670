package session

import (
	"slices"

	"github.com/samber/lo"
)

// SessionExpiredMessage is queued when the backend rejects a restored token.
const SessionExpiredMessage = "Your session has expired. Please log in again."

// User carries the identity restored from storage or received on login.
// A nil field means the value was never set.
type User struct {
	Token    *string
	Username *string
	Avatar   *string
}

func NewUser(token, username, avatar string) User {
	return User{
		Token:    lo.ToPtr(token),
		Username: lo.ToPtr(username),
		Avatar:   lo.ToPtr(avatar),
	}
}

// TokenValue returns the token or an empty string when absent.
func (u User) TokenValue() string { return lo.FromPtr(u.Token) }

func (u User) UsernameValue() string { return lo.FromPtr(u.Username) }

func (u User) AvatarValue() string { return lo.FromPtr(u.Avatar) }

// State is the whole client-side session. Values are treated as immutable:
// Reduce always returns a new State and never writes through a shared slice.
type State struct {
	LoggedIn        bool
	User            User
	FlashMessages   []string
	IsSearchOpen    bool
	IsChatOpen      bool
	UnreadChatCount int
}

// NewState builds a State from restored identity with every UI flag at its default.
func NewState(user User) State {
	return State{
		LoggedIn: lo.FromPtr(user.Token) != "",
		User:     user,
	}
}

// Clone returns a deep copy so callers cannot alias the controller's state.
func (s State) Clone() State {
	c := s
	c.FlashMessages = slices.Clone(s.FlashMessages)
	c.User = s.User.clone()
	return c
}

func (u User) clone() User {
	return User{
		Token:    clonePtr(u.Token),
		Username: clonePtr(u.Username),
		Avatar:   clonePtr(u.Avatar),
	}
}

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	return lo.ToPtr(*p)
}
