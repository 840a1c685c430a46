package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:     "storefront-server",
			LogLevel: "info",
		},
		Server: Server{
			HTTPAddress:     "0.0.0.0:8080",
			PublicDir:       "public",
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: Storage{
			DB: DB{
				Driver:   DriverPostgres,
				Socket:   "/var/run/postgresql",
				User:     "ishocon",
				Password: "ishocon",
				Name:     "ishocon1",
			},
		},
		Session: Session{
			Secret:     "showwin_happy",
			CookieName: "storefront_session",
			TTL:        24 * time.Hour,
		},
	}
}
