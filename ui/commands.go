package ui

import (
	"fmt"
	"social-client/domain/session"
	apperrors "social-client/errors"
	"strings"
)

// ParseCommand turns one line typed by the user into an action.
//
//	login <token> <username> [avatar]
//	logout
//	flash <text...>
//	search open|close
//	chat toggle|close
//	unread inc|clear
func ParseCommand(line string) (session.Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty line", apperrors.ErrUnknownCommand)
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	switch name {
	case "login":
		if len(args) < 2 {
			return nil, fmt.Errorf("%w: login <token> <username> [avatar]", apperrors.ErrMissingArgument)
		}
		avatar := ""
		if len(args) > 2 {
			avatar = args[2]
		}
		return session.Login{Data: session.NewUser(args[0], args[1], avatar)}, nil
	case "logout":
		return session.Logout{}, nil
	case "flash":
		text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))
		if text == "" {
			return nil, fmt.Errorf("%w: flash <text>", apperrors.ErrMissingArgument)
		}
		return session.FlashMessage{Value: text}, nil
	case "search":
		return subCommand(name, args, map[string]session.Action{
			"open":  session.OpenSearch{},
			"close": session.CloseSearch{},
		})
	case "chat":
		return subCommand(name, args, map[string]session.Action{
			"toggle": session.ToggleChat{},
			"close":  session.CloseChat{},
		})
	case "unread":
		return subCommand(name, args, map[string]session.Action{
			"inc":   session.IncrementUnreadChatCount{},
			"clear": session.ClearUnreadChatCount{},
		})
	}
	return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownCommand, name)
}

func subCommand(name string, args []string, actions map[string]session.Action) (session.Action, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: %s needs a sub-command", apperrors.ErrMissingArgument, name)
	}
	action, ok := actions[strings.ToLower(args[0])]
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", apperrors.ErrUnknownCommand, name, args[0])
	}
	return action, nil
}
