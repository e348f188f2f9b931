package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository_Unregister(t *testing.T) {
	t.Run("登録済みなら削除できる", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFavoriteRepository(db)

		mock.ExpectExec("DELETE FROM `favorite_ai_models` WHERE user_id = \\? AND ai_model_id = \\?").
			WithArgs(uint(1), uint(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Unregister(1, 2)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("未登録ならエラー", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFavoriteRepository(db)

		mock.ExpectExec("DELETE FROM `favorite_ai_models` WHERE user_id = \\? AND ai_model_id = \\?").
			WithArgs(uint(1), uint(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Unregister(1, 2)

		require.Error(t, err)
		assert.Equal(t, "お気に入り登録が見つかりません", err.Error())
	})
}

func TestFavoriteRepository_HasRegistered(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `favorite_ai_models` WHERE user_id = \\? AND ai_model_id = \\?").
		WithArgs(uint(1), uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	registered, err := repo.HasRegistered(1, 2)

	require.NoError(t, err)
	assert.True(t, registered)
}
