package session

// Reduce computes the next state for an action. It has no side effects and
// leaves the input untouched; unknown actions return the state unchanged.
func Reduce(state State, action Action) State {
	next := state.Clone()

	switch a := action.(type) {
	case Login:
		next.LoggedIn = true
		next.User = a.Data.clone()
	case Logout:
		// The identity stays in memory, only the flag flips.
		next.LoggedIn = false
	case FlashMessage:
		next.FlashMessages = append(next.FlashMessages, a.Value)
	case OpenSearch:
		next.IsSearchOpen = true
	case CloseSearch:
		next.IsSearchOpen = false
	case ToggleChat:
		next.IsChatOpen = !next.IsChatOpen
	case CloseChat:
		next.IsChatOpen = false
	case IncrementUnreadChatCount:
		next.UnreadChatCount++
	case ClearUnreadChatCount:
		next.UnreadChatCount = 0
	}
	return next
}
