package config

import "time"

// Default values used when neither environment variables, flags, nor the
// JSON file supply a setting. The session signing key deliberately has no
// default; startup fails without an explicit secret.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultDSN             = "users.db"
	DefaultUploadDir       = "uploads"
	DefaultSessionIssuer   = "go-limerick-locker"
	DefaultSessionDuration = 12 * time.Hour
	DefaultRequestTimeout  = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer:   DefaultSessionIssuer,
			SessionDuration: DefaultSessionDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: DefaultDSN,
			},
			Files: Files{
				UploadDir: DefaultUploadDir,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
