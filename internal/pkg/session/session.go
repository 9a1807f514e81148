package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/env"
)

var sessionStore *session.Store

// NewRedisStorage creates the Redis session storage, using database 1 (cache uses DB 0)
func NewRedisStorage(cfg env.Config) fiber.Storage {
	port, err := strconv.Atoi(cfg.CachePort)
	if err != nil {
		port = 6379
	}
	return redis.New(redis.Config{
		Host:     cfg.CacheHost,
		Port:     port,
		Password: cfg.CachePassword,
		Database: 1, // Separate database for sessions
		Reset:    false,
	})
}

// NewSessionStore initializes the global session store. A nil storage keeps
// sessions in memory.
func NewSessionStore(storage fiber.Storage) *session.Store {
	sessionStore = session.New(session.Config{
		Storage:        storage,
		CookieHTTPOnly: true,
		// CookieSecure:   true, // Enable in production with HTTPS
		Expiration: 24 * time.Hour,
		KeyLookup:  "cookie:session_id",
	})
	return sessionStore
}

// SetSessionValue stores a key-value pair in the user's individual session
func SetSessionValue(c *fiber.Ctx, key string, value string) error {
	if sessionStore == nil {
		return fmt.Errorf("session store not initialized")
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	sess.Set(key, value)
	return sess.Save()
}

// GetSessionValue retrieves a value by key from the user's individual session
func GetSessionValue(c *fiber.Ctx, key string) string {
	if sessionStore == nil {
		return ""
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return ""
	}

	value := sess.Get(key)
	if value == nil {
		return ""
	}

	if strValue, ok := value.(string); ok {
		return strValue
	}

	return ""
}
