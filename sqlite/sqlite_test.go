package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/wikiquiz/sqlite"
	"github.com/stretchr/testify/require"
)

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		// Verify tables exist by querying them
		ctx := context.Background()

		var quizCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM quizzes").Scan(&quizCount)
		require.NoError(t, err)

		var questionCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions").Scan(&questionCount)
		require.NoError(t, err)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("open twice on same path is idempotent", func(t *testing.T) {
		t.Parallel()

		path := t.TempDir() + "/wikiquiz.db"

		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())

		db = sqlite.NewDB(path)
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())
	})
}
