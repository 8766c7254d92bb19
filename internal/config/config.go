package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port      string
	StaticDir string

	Passcode      string
	AdminPasscode string
	CronSecret    string

	GroupName   string
	MeetingLink string
	Timezone    string
	StartDate   string

	ReminderWeekday string
	ReminderTime    string

	DataDir      string
	DatabasePath string
	DatabaseURL  string
	KVURL        string
	KVToken      string

	ResendAPIKey    string
	MailFrom        string
	MailReplyTo     string
	ReportEmail     string
	MailConcurrency int

	OutboundTimeout    time.Duration
	OutboundRetries    int
	OutboundRetryDelay time.Duration

	SlackBotToken      string
	SlackChannelID     string
	SlackSigningSecret string

	LoginRate      float64
	LoginBurst     int
	TrustedProxies []string

	LogLevel  string
	LogFormat string
}

func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "3001"),
		StaticDir: getEnv("STATIC_DIR", ""),

		Passcode:      getEnv("PASSCODE", ""),
		AdminPasscode: getEnv("ADMIN_PASSCODE", ""),
		CronSecret:    getEnv("CRON_SECRET", ""),

		GroupName:   getEnv("GROUP_NAME", "Group Meeting"),
		MeetingLink: getEnv("MEETING_LINK", ""),
		Timezone:    getEnv("TIMEZONE", "America/New_York"),
		StartDate:   getEnv("START_DATE", ""),

		ReminderWeekday: strings.ToUpper(getEnv("REMINDER_WEEKDAY", "FR")),
		ReminderTime:    getEnv("REMINDER_TIME", "09:00"),

		DataDir:      getEnv("DATA_DIR", "./data"),
		DatabasePath: getEnv("DATABASE_PATH", ""),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		KVURL:        getEnv("KV_REST_API_URL", getEnv("UPSTASH_REDIS_REST_URL", "")),
		KVToken:      getEnv("KV_REST_API_TOKEN", getEnv("UPSTASH_REDIS_REST_TOKEN", "")),

		ResendAPIKey:    getEnv("RESEND_API_KEY", ""),
		MailFrom:        getEnv("MAIL_FROM", ""),
		MailReplyTo:     getEnv("MAIL_REPLY_TO", ""),
		ReportEmail:     getEnv("REPORT_EMAIL", ""),
		MailConcurrency: getEnvInt("MAIL_CONCURRENCY", 8),

		OutboundTimeout:    getEnvDuration("OUTBOUND_TIMEOUT", 10*time.Second),
		OutboundRetries:    getEnvInt("OUTBOUND_RETRIES", 3),
		OutboundRetryDelay: getEnvDuration("OUTBOUND_RETRY_DELAY", time.Second),

		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackChannelID:     getEnv("SLACK_CHANNEL_ID", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),

		LoginRate:      getEnvFloat("LOGIN_RATE", 1),
		LoginBurst:     getEnvInt("LOGIN_BURST", 5),
		TrustedProxies: getEnvList("TRUSTED_PROXIES"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// KVConfigured reports whether both the KV REST url and token are present.
func (c *Config) KVConfigured() bool {
	return c.KVURL != "" && c.KVToken != ""
}

func (c *Config) MailConfigured() bool {
	return c.ResendAPIKey != "" && c.MailFrom != ""
}

func (c *Config) SlackConfigured() bool {
	return c.SlackBotToken != "" && c.SlackChannelID != ""
}

// Location resolves Timezone, falling back to UTC when the zone is unknown.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("config_invalid_timezone", "timezone", c.Timezone, "error", err)
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvList splits a comma separated value, dropping empty entries.
func getEnvList(key string) []string {
	var values []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("config_invalid_int", "key", key, "value", value)
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		slog.Warn("config_invalid_float", "key", key, "value", value)
		return defaultValue
	}
	return f
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("config_invalid_duration", "key", key, "value", value)
		return defaultValue
	}
	return d
}
