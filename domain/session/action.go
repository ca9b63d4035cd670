package session

type ActionKind string

const (
	KindLogin                    ActionKind = "login"
	KindLogout                   ActionKind = "logout"
	KindFlashMessage             ActionKind = "flashMessage"
	KindOpenSearch               ActionKind = "openSearch"
	KindCloseSearch              ActionKind = "closeSearch"
	KindToggleChat               ActionKind = "toggleChat"
	KindCloseChat                ActionKind = "closeChat"
	KindIncrementUnreadChatCount ActionKind = "incrementUnreadChatCount"
	KindClearUnreadChatCount     ActionKind = "clearUnreadChatCount"
)

// Action is one state-change request submitted through dispatch.
type Action interface {
	Kind() ActionKind
}

type Login struct {
	Data User
}

func (Login) Kind() ActionKind { return KindLogin }

type Logout struct{}

func (Logout) Kind() ActionKind { return KindLogout }

type FlashMessage struct {
	Value string
}

func (FlashMessage) Kind() ActionKind { return KindFlashMessage }

type OpenSearch struct{}

func (OpenSearch) Kind() ActionKind { return KindOpenSearch }

type CloseSearch struct{}

func (CloseSearch) Kind() ActionKind { return KindCloseSearch }

type ToggleChat struct{}

func (ToggleChat) Kind() ActionKind { return KindToggleChat }

type CloseChat struct{}

func (CloseChat) Kind() ActionKind { return KindCloseChat }

type IncrementUnreadChatCount struct{}

func (IncrementUnreadChatCount) Kind() ActionKind { return KindIncrementUnreadChatCount }

type ClearUnreadChatCount struct{}

func (ClearUnreadChatCount) Kind() ActionKind { return KindClearUnreadChatCount }
