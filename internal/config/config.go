package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type RecoveryConfig struct {
	Store         string `yaml:"store"`
	CodeLength    int    `yaml:"code_length"`
	TTL           string `yaml:"ttl"`
	MaxAttempts   int    `yaml:"max_attempts"`
	RequestLimit  int    `yaml:"request_limit"`
	RequestWindow string `yaml:"request_window"`
	SweepInterval string `yaml:"sweep_interval"`
	CountryCode   string `yaml:"country_code"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type GoogleConfig struct {
	ClientID string `yaml:"client_id"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	Recovery  RecoveryConfig  `yaml:"recovery"`
	Twilio    TwilioConfig    `yaml:"twilio"`
	Google    GoogleConfig    `yaml:"google"`
	Casbin    CasbinConfig    `yaml:"casbin"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type Config struct {
	Port                  string
	GinMode               string
	DSN                   string
	RedisAddr             string
	RedisPassword         string
	RedisDB               int
	JWTSecret             string
	JWTIssuer             string
	TokenTTL              time.Duration
	RecoveryStore         string
	RecoveryCodeLength    int
	RecoveryTTL           time.Duration
	RecoveryMaxAttempts   int
	RecoveryRequestLimit  int
	RecoveryRequestWindow time.Duration
	SweepInterval         time.Duration
	PhoneCountryCode      string
	TwilioSID             string
	TwilioToken           string
	TwilioFrom            string
	GoogleClientID        string
	CasbinModelPath       string
	RateLimitRPS          float64
	RateLimitBurst        int
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	path := env("CONFIG_PATH", "config/config.yml")
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	tokenTTL, err := time.ParseDuration(configFile.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	recTTL, err := time.ParseDuration(configFile.Recovery.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid recovery TTL: %w", err)
	}

	reqWindow, err := time.ParseDuration(configFile.Recovery.RequestWindow)
	if err != nil {
		return nil, fmt.Errorf("invalid recovery request window: %w", err)
	}

	sweepEvery, err := time.ParseDuration(configFile.Recovery.SweepInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid recovery sweep interval: %w", err)
	}

	return &Config{
		Port:                  fmt.Sprintf("%d", configFile.App.Port),
		GinMode:               configFile.App.GinMode,
		DSN:                   env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:             env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:         env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:               configFile.Redis.DB,
		JWTSecret:             env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:             configFile.JWT.Issuer,
		TokenTTL:              tokenTTL,
		RecoveryStore:         configFile.Recovery.Store,
		RecoveryCodeLength:    configFile.Recovery.CodeLength,
		RecoveryTTL:           recTTL,
		RecoveryMaxAttempts:   configFile.Recovery.MaxAttempts,
		RecoveryRequestLimit:  configFile.Recovery.RequestLimit,
		RecoveryRequestWindow: reqWindow,
		SweepInterval:         sweepEvery,
		PhoneCountryCode:      configFile.Recovery.CountryCode,
		TwilioSID:             env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:           env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:            env("TWILIO_FROM_NUMBER", configFile.Twilio.FromNumber),
		GoogleClientID:        env("GOOGLE_CLIENT_ID", configFile.Google.ClientID),
		CasbinModelPath:       configFile.Casbin.ModelPath,
		RateLimitRPS:          configFile.RateLimit.RPS,
		RateLimitBurst:        configFile.RateLimit.Burst,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
