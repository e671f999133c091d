package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	envPort                  = "PORT"
	envServerReadTimeout     = "SERVER_READ_TIMEOUT"
	envServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	envServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
	envDBHost                = "DB_HOST"
	envDBPort                = "DB_PORT"
	envDBName                = "DB_NAME"
	envDBUser                = "DB_USER"
	envDBPassword            = "DB_PASSWORD"
	envDBSSLMode             = "DB_SSL_MODE"
	envDBMaxConns            = "DB_MAX_CONNS"
	envDBMinConns            = "DB_MIN_CONNS"
	envAWSRegion             = "AWS_REGION"
	envAWSAccessKeyID        = "AWS_ACCESS_KEY_ID"
	envAWSSecretAccessKey    = "AWS_SECRET_ACCESS_KEY"
	envS3Bucket              = "S3_BUCKET"
	envJWTSecret             = "JWT_SECRET"
	envJWTExpiry             = "JWT_EXPIRY_MINUTES"
	envResendAPIKey          = "RESEND_API_KEY"
	envSendGridAPIKey        = "SENDGRID_API_KEY"
	envMailFrom              = "MAIL_FROM"
	envMailNotifyTo          = "MAIL_NOTIFY_TO"
	envMaxImageUploadSize    = "MAX_IMAGE_UPLOAD_SIZE"
	envDashboardRecentQuotes = "DASHBOARD_RECENT_QUOTES"
)

const (
	defaultServerPort          = "8080"
	defaultServerReadTimeout   = 10 * time.Second
	defaultServerWriteTimeout  = 10 * time.Second
	defaultServerShutdown      = 10 * time.Second
	defaultDBHost              = "localhost"
	defaultDBPort              = 5432
	defaultDBName              = "printshop"
	defaultDBUser              = "printshop_app"
	defaultDBSSLMode           = "disable"
	defaultDBMaxConns          = 25
	defaultDBMinConns          = 5
	defaultJWTExpiry           = 12 * time.Hour
	defaultMaxImageUploadSize  = int64(10 * 1024 * 1024)
	defaultDashboardRecent     = 5
	minJWTSecretLength         = 32
	errPortRequiredFmt         = "PORT must be set"
	errDBPasswordRequiredFmt   = "DB_PASSWORD must be set"
	errRegionRequiredFmt       = "AWS_REGION must be set"
	errAWSAccessKeyRequiredFmt = "AWS_ACCESS_KEY_ID must be set"
	errAWSSecretKeyRequiredFmt = "AWS_SECRET_ACCESS_KEY must be set"
	errBucketRequiredFmt       = "S3_BUCKET must be set"
	errJWTSecretRequiredFmt    = "JWT_SECRET must be set"
	errJWTSecretMinLengthFmt   = "JWT_SECRET must be at least %d characters"
	errMailProviderRequiredFmt = "at least one of RESEND_API_KEY or SENDGRID_API_KEY must be set"
	errMailFromRequiredFmt     = "MAIL_FROM must be set"
	errMailNotifyToRequiredFmt = "MAIL_NOTIFY_TO must be set"
	errInvalidConfigurationFmt = "invalid configuration: %w"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AWS      AWSConfig
	JWT      JWTConfig
	Mail     MailConfig
	App      AppConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MinConns int
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

type JWTConfig struct {
	Secret         string
	ExpiryDuration time.Duration
}

type MailConfig struct {
	ResendAPIKey   string
	SendGridAPIKey string
	From           string
	NotifyTo       string
}

type AppConfig struct {
	MaxImageUploadSize int64
	DashboardRecent    int
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv(envPort, defaultServerPort),
			ReadTimeout:     getDurationEnv(envServerReadTimeout, defaultServerReadTimeout),
			WriteTimeout:    getDurationEnv(envServerWriteTimeout, defaultServerWriteTimeout),
			ShutdownTimeout: getDurationEnv(envServerShutdownTimeout, defaultServerShutdown),
		},
		Database: DatabaseConfig{
			Host:     getEnv(envDBHost, defaultDBHost),
			Port:     getIntEnv(envDBPort, defaultDBPort),
			Database: getEnv(envDBName, defaultDBName),
			User:     getEnv(envDBUser, defaultDBUser),
			Password: os.Getenv(envDBPassword),
			SSLMode:  getEnv(envDBSSLMode, defaultDBSSLMode),
			MaxConns: getIntEnv(envDBMaxConns, defaultDBMaxConns),
			MinConns: getIntEnv(envDBMinConns, defaultDBMinConns),
		},
		AWS: AWSConfig{
			Region:          os.Getenv(envAWSRegion),
			AccessKeyID:     os.Getenv(envAWSAccessKeyID),
			SecretAccessKey: os.Getenv(envAWSSecretAccessKey),
			Bucket:          os.Getenv(envS3Bucket),
		},
		JWT: JWTConfig{
			Secret:         os.Getenv(envJWTSecret),
			ExpiryDuration: getDurationEnv(envJWTExpiry, defaultJWTExpiry),
		},
		Mail: MailConfig{
			ResendAPIKey:   os.Getenv(envResendAPIKey),
			SendGridAPIKey: os.Getenv(envSendGridAPIKey),
			From:           os.Getenv(envMailFrom),
			NotifyTo:       os.Getenv(envMailNotifyTo),
		},
		App: AppConfig{
			MaxImageUploadSize: getInt64Env(envMaxImageUploadSize, defaultMaxImageUploadSize),
			DashboardRecent:    getIntEnv(envDashboardRecentQuotes, defaultDashboardRecent),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(errInvalidConfigurationFmt, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf(errPortRequiredFmt)
	}

	if c.Database.Password == "" {
		return fmt.Errorf(errDBPasswordRequiredFmt)
	}

	if c.AWS.Region == "" {
		return fmt.Errorf(errRegionRequiredFmt)
	}

	if c.AWS.AccessKeyID == "" {
		return fmt.Errorf(errAWSAccessKeyRequiredFmt)
	}

	if c.AWS.SecretAccessKey == "" {
		return fmt.Errorf(errAWSSecretKeyRequiredFmt)
	}

	if c.AWS.Bucket == "" {
		return fmt.Errorf(errBucketRequiredFmt)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf(errJWTSecretRequiredFmt)
	}

	if len(c.JWT.Secret) < minJWTSecretLength {
		return fmt.Errorf(errJWTSecretMinLengthFmt, minJWTSecretLength)
	}

	if c.Mail.ResendAPIKey == "" && c.Mail.SendGridAPIKey == "" {
		return fmt.Errorf(errMailProviderRequiredFmt)
	}

	if c.Mail.From == "" {
		return fmt.Errorf(errMailFromRequiredFmt)
	}

	if c.Mail.NotifyTo == "" {
		return fmt.Errorf(errMailNotifyToRequiredFmt)
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}
