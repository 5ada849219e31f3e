package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/olivermegias/trainingtop/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionTokenLen  = 35
	sessionKeyPrefix = "trainingtop-service-session||"
	tokensSetKey     = "trainingtop-service-sessions"
)

var (
	ErrWrongUsername = errors.New("wrong username")
	ErrWrongPassword = errors.New("wrong password")
)

type Admin struct {
	Username     string
	PasswordHash string
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Service manages admin login sessions in redis. Each session is a
// key holding its creation timestamp, plus membership in a tokens set
// used for periodic cleanup.
type Service struct {
	admin       *Admin
	redisClient *redis.Client
	ttl         time.Duration
	// RandStringFunc generates session tokens, swappable in tests
	RandStringFunc func(n int) (string, error)
}

func NewAuthService(
	admin *Admin,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		admin:          admin,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (as *Service) Login(ctx context.Context, credentials Credentials, createdAt time.Time) (string, error) {
	if credentials.Username != as.admin.Username {
		return "", ErrWrongUsername
	}
	if !pkg.CheckPasswordHash(credentials.Password, as.admin.PasswordHash) {
		return "", ErrWrongPassword
	}

	token, err := as.RandStringFunc(sessionTokenLen)
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	if err := as.redisClient.Set(ctx, sessionKeyPrefix+token, createdAt.Unix(), 0).Err(); err != nil {
		return "", err
	}
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	createdAtUnix, err := as.sessionCreatedAt(ctx, token)
	if err != nil {
		return false, err
	}

	if err := as.redisClient.Set(ctx, sessionKeyPrefix+token, 0, 0).Err(); err != nil {
		return false, err
	}
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return createdAtUnix > 0, nil
}

// ScanAndClean walks all known sessions and removes the expired ones.
func (as *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := as.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}
	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Infof("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var expired []string
	for _, token := range sessionTokens {
		createdAtUnix, err := as.sessionCreatedAt(ctx, token)
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}
		if time.Since(time.Unix(createdAtUnix, 0)) > as.ttl {
			expired = append(expired, token)
		}
	}

	for _, token := range expired {
		log.Infof("auth service, cleaning expired session: %s", token)
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
		}
	}
}

func (as *Service) sessionCreatedAt(ctx context.Context, token string) (int64, error) {
	createdAtRaw, err := as.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(createdAtRaw, 10, 64)
}
