package repositories

import (
	"context"
	apperrors "social-client/errors"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSessionRepository_Get_Absent_Key(t *testing.T) {
	req := require.New(t)
	repository := NewSessionRepository(openTestDB(t))

	value, found, err := repository.Get(context.Background(), "complexappToken")

	req.NoError(err)
	req.False(found)
	req.Empty(value)
}

func TestSessionRepository_Set_Then_Get(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewSessionRepository(openTestDB(t))

	req.NoError(repository.Set(ctx, "complexappToken", "abc123"))

	value, found, err := repository.Get(ctx, "complexappToken")
	req.NoError(err)
	req.True(found)
	req.Equal("abc123", value)
}

func TestSessionRepository_Set_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewSessionRepository(openTestDB(t))

	for i := 0; i < 3; i++ {
		req.NoError(repository.Set(ctx, "complexappUsername", "alice"))
	}

	value, found, err := repository.Get(ctx, "complexappUsername")
	req.NoError(err)
	req.True(found)
	req.Equal("alice", value)
}

func TestSessionRepository_Empty_Value_Is_Found(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewSessionRepository(openTestDB(t))

	req.NoError(repository.Set(ctx, "complexappAvatar", ""))

	value, found, err := repository.Get(ctx, "complexappAvatar")
	req.NoError(err)
	req.True(found)
	req.Empty(value)
}

func TestSessionRepository_Delete_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewSessionRepository(openTestDB(t))
	req.NoError(repository.Set(ctx, "complexappToken", "abc123"))

	req.NoError(repository.Delete(ctx, "complexappToken"))
	req.NoError(repository.Delete(ctx, "complexappToken"))

	_, found, err := repository.Get(ctx, "complexappToken")
	req.NoError(err)
	req.False(found)
}

func TestSessionRepository_Survives_Reopen(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	req.NoError(NewSessionRepository(db).Set(ctx, "complexappToken", "abc123"))
	req.NoError(db.Close())

	db, err = badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	value, found, err := NewSessionRepository(db).Get(ctx, "complexappToken")
	req.NoError(err)
	req.True(found)
	req.Equal("abc123", value)
}

func TestSessionRepository_Rejects_Empty_Key(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewSessionRepository(openTestDB(t))

	req.ErrorIs(repository.Set(ctx, "", "x"), apperrors.ErrEmptyKey)
	req.ErrorIs(repository.Delete(ctx, ""), apperrors.ErrEmptyKey)
	_, _, err := repository.Get(ctx, "")
	req.ErrorIs(err, apperrors.ErrEmptyKey)
}

func TestSessionRepository_Cancelled_Context(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repository := NewSessionRepository(openTestDB(t))

	req.ErrorIs(repository.Set(ctx, "complexappToken", "x"), context.Canceled)
}

func TestListSession(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := openTestDB(t)
	repository := NewSessionRepository(db)
	req.NoError(repository.Set(ctx, "complexappUsername", "alice"))
	req.NoError(repository.Set(ctx, "complexappToken", "abc123"))
	req.NoError(db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("other:key"), []byte("ignored"))
	}))

	entries, err := ListSession(db)

	req.NoError(err)
	req.Equal([]Entry{
		{Key: "complexappToken", Value: "abc123"},
		{Key: "complexappUsername", Value: "alice"},
	}, entries)
}
