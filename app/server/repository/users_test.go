package repository

import (
	"context"
	"errors"
	"habit-tracker/app/server/models"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsers(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(userRows().AddRow(7, "a@x.com", "alice", "USER", "$argon2id$hash", true, false))
	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE "profiles"."user_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "first_name", "last_name", "bio"}).AddRow(3, 7, "Alice", "Liddell", "hi"))

	user, err := repo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, "$argon2id$hash", user.PasswordHash)
	assert.True(t, user.CanAuthenticate())
	assert.Equal(t, "Alice", user.Profile.FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsers_FindByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsers(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(userRows())

	user, err := repo.FindByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsers_FindByID_StorageFault(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsers(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByID(context.Background(), 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestUsers_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsers(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"idx_users_email\""})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.User{
		Email:        "dup@x.com",
		Role:         models.RoleUser,
		PasswordHash: "h",
		Enabled:      true,
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsers_Create_WithProfile(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsers(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery(`INSERT INTO "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectCommit()

	user := &models.User{
		Email:        "new@x.com",
		Role:         models.RoleUser,
		PasswordHash: "h",
		Enabled:      true,
		Profile:      models.Profile{FirstName: "N", LastName: "X", Bio: "b"},
	}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, uint(11), user.ID)
	assert.Equal(t, uint(11), user.Profile.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsers_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsers(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Update(context.Background(), &models.User{ID: 2, Role: models.RoleAdmin, Enabled: false}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsers_Update_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsers(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, repo.Update(context.Background(), &models.User{ID: 2}), ErrNotFound)
}

func TestUsers_UpdateProfile(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsers(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "profiles" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateProfile(context.Background(), &models.Profile{UserID: 2, Bio: "new"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsers_DeleteByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsers(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteByID(context.Background(), 5))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "users"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, repo.DeleteByID(context.Background(), 5), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsers_ExistsByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsers(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUsers_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsers(db)

	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY id ASC LIMIT`).
		WillReturnRows(userRows().
			AddRow(1, "a@x.com", "a", "ADMIN", "h", true, false).
			AddRow(2, "b@x.com", "b", "USER", "h", true, false))
	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE "profiles"."user_id" IN \(\$1,\$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "first_name"}))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	users, count, err := repo.List(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int64(5), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
