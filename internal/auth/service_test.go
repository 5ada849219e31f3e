package auth

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var (
	testAdmin = &Admin{
		Username:     "coach",
		PasswordHash: "$2a$14$6Gmhg85si2etd3K9oB8nYu1cxfbrdmhkg6wI6OXsa88IF4L2r/L9i", // testpass
	}
	testCredentials = Credentials{
		Username: "coach",
		Password: "testpass",
	}
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

func TestService_Login(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	authService := NewAuthService(testAdmin, time.Hour, rdb)
	require.NotNil(t, authService)
	authService.RandStringFunc = func(int) (string, error) {
		return "fixed-token", nil
	}

	now := time.Now()
	mock.ExpectSet(sessionKeyPrefix+"fixed-token", now.Unix(), 0).SetVal("OK")
	mock.ExpectSAdd(tokensSetKey, "fixed-token").SetVal(1)

	token, err := authService.Login(context.Background(), testCredentials, now)
	require.NoError(t, err)
	assert.Equal(t, "fixed-token", token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Login_wrongCredentials(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	defer rdb.Close()

	authService := NewAuthService(testAdmin, time.Hour, rdb)
	now := time.Now()

	token, err := authService.Login(context.Background(), Credentials{
		Username: "nobody",
		Password: "testpass",
	}, now)
	assert.ErrorIs(t, err, ErrWrongUsername)
	assert.Empty(t, token)

	token, err = authService.Login(context.Background(), Credentials{
		Username: "coach",
		Password: "invalid-pass",
	}, now)
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Empty(t, token)
}

func TestService_Logout(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	authService := NewAuthService(testAdmin, time.Hour, rdb)

	createdAt := time.Now().Add(-10 * time.Minute)
	sessionKey := sessionKeyPrefix + "some-token"
	mock.ExpectGet(sessionKey).SetVal(strconv.FormatInt(createdAt.Unix(), 10))
	mock.ExpectSet(sessionKey, 0, 0).SetVal("OK")
	mock.ExpectSRem(tokensSetKey, "some-token").SetVal(1)

	loggedOut, err := authService.Logout(context.Background(), "some-token")
	require.NoError(t, err)
	assert.True(t, loggedOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ScanAndClean(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	authService := NewAuthService(testAdmin, time.Hour, rdb)

	now := time.Now()
	expired, fresh := "expired-token", "fresh-token"
	mock.ExpectSMembers(tokensSetKey).SetVal([]string{expired, fresh})
	mock.ExpectGet(sessionKeyPrefix + expired).SetVal(strconv.FormatInt(now.Add(-2*time.Hour).Unix(), 10))
	mock.ExpectGet(sessionKeyPrefix + fresh).SetVal(strconv.FormatInt(now.Unix(), 10))
	// only the expired session gets removed
	mock.ExpectDel(sessionKeyPrefix + expired).SetVal(1)
	mock.ExpectSRem(tokensSetKey, expired).SetVal(1)

	authService.ScanAndClean(context.Background())
	assert.NoError(t, mock.ExpectationsWereMet())
}
