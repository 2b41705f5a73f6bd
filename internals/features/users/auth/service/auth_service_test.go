package service

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock, db
}

func userRows(t *testing.T, id uint, email, password string) *sqlmock.Rows {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return sqlmock.
		NewRows([]string{"id", "email_address", "password", "created_at"}).
		AddRow(id, email, string(hashed), time.Now())
}

func TestRegisterCreatesUser(t *testing.T) {
	gdb, mock, db := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	user, err := Register(gdb, "new@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.EmailAddress)
	assert.NotEqual(t, "secret", user.Password, "plaintext must never be stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))

	assert.NoError(t, mock.ExpectationsWereMet())
}

// A duplicate registration fails without touching the existing record.
func TestRegisterDuplicateEmail(t *testing.T) {
	gdb, mock, db := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(userRows(t, 1, "taken@example.com", "whatever"))

	_, err := Register(gdb, "taken@example.com", "secret")
	assert.ErrorIs(t, err, ErrEmailTaken)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginSuccess(t *testing.T) {
	setTestSecret(t)
	gdb, mock, db := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(userRows(t, 7, "user@example.com", "secret"))

	token, err := Login(gdb, "user@example.com", "secret")
	require.NoError(t, err)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	setTestSecret(t)
	gdb, mock, db := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(userRows(t, 7, "user@example.com", "secret"))

	_, err := Login(gdb, "user@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	setTestSecret(t)
	gdb, mock, db := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	// Unknown email and wrong password are indistinguishable to the caller.
	_, err := Login(gdb, "ghost@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
