package ui

import (
	"bytes"
	"social-client/domain/session"
	apperrors "social-client/errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want session.Action
	}{
		{"login abc123 alice https://a.example/alice.png", session.Login{Data: session.NewUser("abc123", "alice", "https://a.example/alice.png")}},
		{"login abc123 alice", session.Login{Data: session.NewUser("abc123", "alice", "")}},
		{"logout", session.Logout{}},
		{"  LOGOUT  ", session.Logout{}},
		{"flash Post created   successfully", session.FlashMessage{Value: "Post created   successfully"}},
		{"search open", session.OpenSearch{}},
		{"search close", session.CloseSearch{}},
		{"chat toggle", session.ToggleChat{}},
		{"chat close", session.CloseChat{}},
		{"unread inc", session.IncrementUnreadChatCount{}},
		{"unread clear", session.ClearUnreadChatCount{}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			req := require.New(t)
			action, err := ParseCommand(tt.line)
			req.NoError(err)
			req.Equal(tt.want, action)
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"", apperrors.ErrUnknownCommand},
		{"dance", apperrors.ErrUnknownCommand},
		{"search sideways", apperrors.ErrUnknownCommand},
		{"login abc123", apperrors.ErrMissingArgument},
		{"flash", apperrors.ErrMissingArgument},
		{"chat", apperrors.ErrMissingArgument},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseCommand(tt.line)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRenderer_Prints_Each_Flash_Message_Once(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	renderer := NewRenderer(&out, false)

	state := session.Reduce(session.NewState(session.User{}), session.FlashMessage{Value: "first notice"})
	renderer.Notify(state)
	state = session.Reduce(state, session.FlashMessage{Value: "second notice"})
	renderer.Notify(state)

	req.Equal(1, strings.Count(out.String(), "first notice"))
	req.Equal(1, strings.Count(out.String(), "second notice"))
}

func TestRenderer_Table(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	renderer := NewRenderer(&out, false)

	state := session.Reduce(session.NewState(session.User{}), session.Login{Data: session.NewUser("t", "alice", "")})
	state = session.Reduce(state, session.IncrementUnreadChatCount{})
	renderer.Notify(state)

	req.Contains(out.String(), "alice")
	req.Contains(out.String(), "true")
	req.Contains(out.String(), "closed")
}
