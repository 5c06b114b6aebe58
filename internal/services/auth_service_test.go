package services

import (
	"strconv"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/seva-foundation/temple-backend/internal/config"
	"github.com/seva-foundation/temple-backend/internal/dto"
	"github.com/seva-foundation/temple-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-access-secret",
		RefreshSecret:    "test-refresh-secret",
		JWTAccessExpiry:  time.Hour,
		JWTRefreshExpiry: 2 * time.Hour,
	}
}

func newTestService(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewAuthService(gdb, testConfig()), mock
}

func TestGenerateAccessTokenClaims(t *testing.T) {
	svc := NewAuthService(nil, testConfig())
	user := &models.User{ID: 42, Username: "priya", Role: models.RoleAdmin}

	signed, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-access-secret"), nil
	})
	require.NoError(t, err)

	assert.Equal(t, strconv.FormatUint(42, 10), claims["sub"])
	assert.Equal(t, "priya", claims["username"])
	assert.Equal(t, models.RoleAdmin, claims["role"])
}

func TestRefreshTokenUsesSeparateSecret(t *testing.T) {
	svc := NewAuthService(nil, testConfig())
	user := &models.User{ID: 7}

	signed, err := svc.GenerateRefreshToken(user)
	require.NoError(t, err)

	// Valid against the refresh secret.
	_, err = jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-refresh-secret"), nil
	})
	assert.NoError(t, err)

	// A refresh token must never verify as an access token.
	_, err = jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-access-secret"), nil
	})
	assert.Error(t, err)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc := NewAuthService(nil, testConfig())

	_, err := svc.Refresh("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshRejectsStaleToken(t *testing.T) {
	svc, mock := newTestService(t)

	token, err := svc.GenerateRefreshToken(&models.User{ID: 7})
	require.NoError(t, err)

	// Cryptographically valid, but no row stores it anymore: the token
	// was rotated out by a newer login.
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = svc.Refresh(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshRotatesStoredToken(t *testing.T) {
	svc, mock := newTestService(t)

	token, err := svc.GenerateRefreshToken(&models.User{ID: 7})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "role", "is_active"}).
			AddRow(7, "priya", "priya@example.org", models.RoleUser, true))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	pair, err := svc.Refresh(token)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginPersistsRefreshToken(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password", "role", "is_active"}).
			AddRow(7, "priya", "priya@example.org", hashPassword(t, "s3cret-pass"), models.RoleUser, true))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := svc.Login(&dto.LoginRequest{Username: "priya", Password: "s3cret-pass"})
	require.NoError(t, err)

	assert.Equal(t, "priya", resp.User.Username)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
	// The UPDATE expectation above is the persistence check: a login that
	// does not store its refresh token leaves it unmet.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "is_active"}).
			AddRow(7, "priya", hashPassword(t, "s3cret-pass"), true))

	_, err := svc.Login(&dto.LoginRequest{Username: "priya", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	svc, mock := newTestService(t)

	// Correct password, deactivated account: same opaque error as a bad
	// password, and no token is issued or stored.
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "is_active"}).
			AddRow(7, "priya", hashPassword(t, "s3cret-pass"), false))

	_, err := svc.Login(&dto.LoginRequest{Username: "priya", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow(1, "priya", "priya@example.org"))

	_, err := svc.Register(&dto.RegisterRequest{
		Username: "priya",
		Email:    "priya@example.org",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, ErrUserExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogoutClearsRefreshToken(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "refresh_token"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, svc.Logout(7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
