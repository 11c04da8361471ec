package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestActivityRepository_RecentFollows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "follower_id", "following_id"}).
		AddRow(3, 7, 1).
		AddRow(2, 8, 1)
	mock.ExpectQuery(`FROM "followers" WHERE following_id = \$1 ORDER BY created_at DESC, id DESC`).
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(7, "carol").AddRow(8, "dave"))

	follows, err := repo.RecentFollows(ctx, 1, 10)
	assert.NoError(t, err)
	assert.Len(t, follows, 2)
	assert.Equal(t, "carol", follows[0].FollowerUser.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_RecentLikes_ExcludesSelf(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`JOIN posts ON posts\.id = likes\.post_id WHERE posts\.user_id = \$1 AND likes\.user_id <> \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "post_id"}))

	likes, err := repo.RecentLikes(ctx, 1, 10)
	assert.NoError(t, err)
	assert.Empty(t, likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
