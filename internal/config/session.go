package config

import (
	"os"
	"sync"
	"time"
)

type SessionConfig struct {
	CookieName    string
	MaxAge        time.Duration
	EncryptionKey string
}

var (
	sessionConfig *SessionConfig
	sessionOnce   sync.Once
)

func LoadSessionConfig() *SessionConfig {
	sessionOnce.Do(func() {
		sessionConfig = &SessionConfig{
			CookieName:    getEnv("SESSION_COOKIE_NAME", "user-session"),
			MaxAge:        7 * 24 * time.Hour,
			EncryptionKey: os.Getenv("SESSION_ENCRYPTION_KEY"),
		}
	})
	return sessionConfig
}
