package config

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	HTTPAddr    string `env:"HTTP_ADDR,default=:8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	RedisAddr   string `env:"REDIS_ADDR"`

	JWTSecret  string        `env:"JWT_SECRET,required"`
	JWTIssuer  string        `env:"JWT_ISSUER,default=drive-in"`
	SessionTTL time.Duration `env:"SESSION_TTL,default=168h"`

	OTPTTL      time.Duration `env:"OTP_TTL,default=10m"`
	OTPCooldown time.Duration `env:"OTP_COOLDOWN,default=60s"`

	ResendAPIKey string `env:"RESEND_API_KEY"`
	EmailFrom    string `env:"EMAIL_FROM,default=Drive-in <no-reply@drive-in.local>"`

	TMDBToken    string `env:"TMDB_TOKEN"`
	TMDBBaseURL  string `env:"TMDB_BASE_URL,default=https://api.themoviedb.org/3"`
	TMDBLanguage string `env:"TMDB_LANGUAGE,default=pt-BR"`

	CookieDomain string `env:"COOKIE_DOMAIN"`
	CookieSecure bool   `env:"COOKIE_SECURE,default=true"`
}

// Load reads an optional .env file and then the process environment.
func Load(ctx context.Context) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
