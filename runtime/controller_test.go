package runtime

import (
	"context"
	"errors"
	"log/slog"
	"social-client/contract"
	"social-client/domain/session"
	"social-client/mocks"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func loggedInState() session.State {
	return session.NewState(session.NewUser("t", "u", "a"))
}

func TestController_Start_Persists_Initial_State(t *testing.T) {
	ctrl := gomock.NewController(t)
	persister := mocks.NewMockISessionPersister(ctrl)
	initial := loggedInState()
	controller := NewController(logs.GetLoggerFromLevel(slog.LevelDebug), initial, persister)

	persister.EXPECT().PersistSession(gomock.Any(), initial).Return(nil).Times(1)

	controller.Start(context.Background())
}

func TestController_Persists_Only_When_LoggedIn_Changes(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	persister := mocks.NewMockISessionPersister(ctrl)
	controller := NewController(logs.GetLoggerFromLevel(slog.LevelDebug), session.NewState(session.User{}), persister)

	gomock.InOrder(
		persister.EXPECT().PersistSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s session.State) error {
				req.True(s.LoggedIn)
				req.Equal("t", s.User.TokenValue())
				return nil
			}),
		persister.EXPECT().PersistSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s session.State) error {
				req.False(s.LoggedIn)
				return nil
			}),
	)

	// Neither of these flip the login flag
	controller.Dispatch(session.OpenSearch{})
	controller.Dispatch(session.FlashMessage{Value: "hello"})
	controller.Dispatch(session.Logout{})

	controller.Dispatch(session.Login{Data: session.NewUser("t", "u", "a")})
	controller.Dispatch(session.ToggleChat{})
	controller.Dispatch(session.Logout{})

	state := controller.State()
	req.False(state.LoggedIn)
	req.True(state.IsChatOpen)
	req.True(state.IsSearchOpen)
	req.Equal([]string{"hello"}, state.FlashMessages)
}

func TestController_Persistence_Failure_Is_Logged_Not_Fatal(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	persister := mocks.NewMockISessionPersister(ctrl)
	controller := NewController(logs.GetLoggerFromLevel(slog.LevelDebug), session.NewState(session.User{}), persister)

	persister.EXPECT().PersistSession(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	state := controller.Dispatch(session.Login{Data: session.NewUser("t", "u", "a")})

	req.True(state.LoggedIn)
}

func TestController_Notifies_Observers_With_New_State(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	persister := mocks.NewMockISessionPersister(ctrl)
	observer := mocks.NewMockObserver(ctrl)
	controller := NewController(logs.GetLoggerFromLevel(slog.LevelDebug), session.NewState(session.User{}), persister)

	observer.EXPECT().Notify(gomock.Any()).Do(func(s session.State) {
		req.Equal(1, s.UnreadChatCount)
	}).Times(1)
	id := controller.Subscribe(observer)

	controller.Dispatch(session.IncrementUnreadChatCount{})
	controller.Unsubscribe(id)
	controller.Dispatch(session.IncrementUnreadChatCount{})

	req.Equal(2, controller.State().UnreadChatCount)
}

func TestController_State_Is_A_Copy(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	controller := NewController(logs.GetLoggerFromLevel(slog.LevelDebug), session.NewState(session.User{}), mocks.NewMockISessionPersister(ctrl))
	controller.Dispatch(session.FlashMessage{Value: "one"})

	state := controller.State()
	state.FlashMessages[0] = "tampered"

	req.Equal([]string{"one"}, controller.State().FlashMessages)
}

func TestController_Concurrent_Dispatch_Is_Serialized(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	controller := NewController(logs.GetLoggerFromLevel(slog.LevelError), session.NewState(session.User{}), mocks.NewMockISessionPersister(ctrl))
	var seen []int
	controller.Subscribe(contract.ObserverFunc(func(s session.State) {
		seen = append(seen, s.UnreadChatCount)
	}))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			controller.Dispatch(session.IncrementUnreadChatCount{})
		}()
	}
	wg.Wait()

	req.Equal(100, controller.State().UnreadChatCount)
	req.Len(seen, 100)
	for i, count := range seen {
		req.Equal(i+1, count)
	}
}
