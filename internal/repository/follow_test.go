package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestFollowRepository_Follow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO followers \(follower_id, following_id, created_at\)`).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Follow(ctx, 1, 2)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_Follow_DuplicateIsNoop(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	// The unique index plus ON CONFLICT DO NOTHING makes a repeated follow
	// affect zero rows without erroring.
	mock.ExpectExec(`INSERT INTO followers \(follower_id, following_id, created_at\)`).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Follow(ctx, 1, 2)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_Unfollow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "followers" WHERE follower_id = $1 AND following_id = $2`)).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Unfollow(ctx, 1, 2)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_IsFollowing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	t.Run("Following", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "followers" WHERE follower_id = $1 AND following_id = $2`)).
			WithArgs(1, 2).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		following, err := repo.IsFollowing(ctx, 1, 2)
		assert.NoError(t, err)
		assert.True(t, following)
	})

	t.Run("Not Following", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "followers" WHERE follower_id = $1 AND following_id = $2`)).
			WithArgs(1, 3).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		following, err := repo.IsFollowing(ctx, 1, 3)
		assert.NoError(t, err)
		assert.False(t, following)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
