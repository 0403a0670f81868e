package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statusfeed/internal/apperrors"
	"statusfeed/internal/model"
)

func registerUser(t *testing.T, env *testEnv, username string) *model.User {
	t.Helper()
	user, err := env.users.Register(username, "Passw0rd!")
	require.NoError(t, err)
	return user
}

func TestPostValidation(t *testing.T) {
	env := setupServices(t)
	user := registerUser(t, env, "alice")

	t.Run("empty text is rejected", func(t *testing.T) {
		_, err := env.statuses.Post(user.ID, "")
		require.NotNil(t, apperrors.AsValidation(err))
	})

	t.Run("whitespace only is rejected", func(t *testing.T) {
		_, err := env.statuses.Post(user.ID, "   ")
		require.NotNil(t, apperrors.AsValidation(err))
	})

	t.Run("over 280 characters is rejected", func(t *testing.T) {
		_, err := env.statuses.Post(user.ID, strings.Repeat("a", 281))
		require.NotNil(t, apperrors.AsValidation(err))
	})

	t.Run("text is stored trimmed", func(t *testing.T) {
		status, err := env.statuses.Post(user.ID, "  hello world  ")
		require.NoError(t, err)
		assert.Equal(t, "hello world", status.Text)
	})

	t.Run("unknown account cannot post", func(t *testing.T) {
		_, err := env.statuses.Post(9999, "hello")
		assert.True(t, apperrors.IsNotFound(err))
	})
}

// TestFeedLifecycle walks the whole post/edit/delete flow against one
// account, checking the newest-first ordering after every step.
func TestFeedLifecycle(t *testing.T) {
	env := setupServices(t)
	user := registerUser(t, env, "alice")

	first, err := env.statuses.Post(user.ID, "hello world")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	second, err := env.statuses.Post(user.ID, "second")
	require.NoError(t, err)
	assert.True(t, second.CreatedAt.After(first.CreatedAt))

	t.Run("list is newest first", func(t *testing.T) {
		statuses, err := env.statuses.List(user.ID)
		require.NoError(t, err)
		require.Len(t, statuses, 2)
		assert.Equal(t, second.ID, statuses[0].ID)
		assert.Equal(t, first.ID, statuses[1].ID)
	})

	t.Run("edit replaces text and keeps position", func(t *testing.T) {
		require.NoError(t, env.statuses.Edit(user.ID, first.ID, "hello universe"))

		statuses, err := env.statuses.List(user.ID)
		require.NoError(t, err)
		require.Len(t, statuses, 2)
		// edited status stays last: created_at did not move
		assert.Equal(t, first.ID, statuses[1].ID)
		assert.Equal(t, "hello universe", statuses[1].Text)

		stored, err := env.statusRepo.FindByID(first.ID)
		require.NoError(t, err)
		assert.True(t, stored.CreatedAt.Equal(first.CreatedAt))
	})

	t.Run("delete removes the status", func(t *testing.T) {
		require.NoError(t, env.statuses.Delete(user.ID, second.ID))

		statuses, err := env.statuses.List(user.ID)
		require.NoError(t, err)
		require.Len(t, statuses, 1)
		assert.Equal(t, first.ID, statuses[0].ID)
	})

	t.Run("second delete is NotFound", func(t *testing.T) {
		err := env.statuses.Delete(user.ID, second.ID)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestOwnership(t *testing.T) {
	env := setupServices(t)
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")

	status, err := env.statuses.Post(alice.ID, "mine")
	require.NoError(t, err)

	t.Run("foreign edit reports NotFound", func(t *testing.T) {
		err := env.statuses.Edit(bob.ID, status.ID, "stolen")
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("foreign delete reports NotFound", func(t *testing.T) {
		err := env.statuses.Delete(bob.ID, status.ID)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("the status is untouched", func(t *testing.T) {
		statuses, err := env.statuses.List(alice.ID)
		require.NoError(t, err)
		require.Len(t, statuses, 1)
		assert.Equal(t, "mine", statuses[0].Text)
	})

	t.Run("missing status reports NotFound for its owner too", func(t *testing.T) {
		err := env.statuses.Edit(alice.ID, 9999, "ghost")
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestListEmptyFeed(t *testing.T) {
	env := setupServices(t)
	user := registerUser(t, env, "alice")

	statuses, err := env.statuses.List(user.ID)
	require.NoError(t, err)
	assert.Empty(t, statuses)
}

func TestEditValidation(t *testing.T) {
	env := setupServices(t)
	user := registerUser(t, env, "alice")

	status, err := env.statuses.Post(user.ID, "hello")
	require.NoError(t, err)

	require.NotNil(t, apperrors.AsValidation(env.statuses.Edit(user.ID, status.ID, "  ")))
	require.NotNil(t, apperrors.AsValidation(env.statuses.Edit(user.ID, status.ID, strings.Repeat("a", 281))))

	// failed edits left the text alone
	stored, err := env.statusRepo.FindByID(status.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", stored.Text)
}
