package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings. Game rules are not configurable.
type Config struct {
	// WindowWidth and WindowHeight size the OS window only. The game is
	// always laid out at the WindowWidth x WindowHeight constants and
	// scaled to fit the window.
	WindowWidth  int
	WindowHeight int
	Title        string
	Theme        string
	TPS          int
	LogLevel     log.Level

	WebHost        string
	WebPort        string
	WebRoot        string
	StaticCacheAge time.Duration
	RateLimitRPS   int
	RateLimitBurst int
	Production     bool
}

// Default returns the settings used when nothing is overridden.
func Default() Config {
	return Config{
		WindowWidth:    WindowWidth,
		WindowHeight:   WindowHeight,
		Title:          Title,
		Theme:          "dark",
		TPS:            TPS,
		LogLevel:       log.InfoLevel,
		WebHost:        "0.0.0.0",
		WebPort:        "8080",
		WebRoot:        "web",
		StaticCacheAge: 5 * time.Minute,
		RateLimitRPS:   20,
		RateLimitBurst: 40,
	}
}

// Load reads an optional .env file and applies environment overrides on top
// of Default. Invalid values are logged and ignored.
func Load(files ...string) Config {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		log.Warn("could not read env file", "err", err)
	}
	return FromEnv()
}

// FromEnv applies environment overrides on top of Default.
func FromEnv() Config {
	c := Default()
	c.WindowWidth = getEnvInt("RIPPLE_WINDOW_WIDTH", c.WindowWidth)
	c.WindowHeight = getEnvInt("RIPPLE_WINDOW_HEIGHT", c.WindowHeight)
	c.Title = getEnv("RIPPLE_TITLE", c.Title)
	c.TPS = getEnvInt("RIPPLE_TPS", c.TPS)
	c.WebHost = getEnv("WEB_HOST", c.WebHost)
	c.WebPort = getEnv("WEB_PORT", c.WebPort)
	c.WebRoot = getEnv("WEB_ROOT", c.WebRoot)
	c.StaticCacheAge = getEnvDuration("STATIC_CACHE_AGE", c.StaticCacheAge)
	c.RateLimitRPS = getEnvInt("RATE_LIMIT_RPS", c.RateLimitRPS)
	c.RateLimitBurst = getEnvInt("RATE_LIMIT_BURST", c.RateLimitBurst)
	c.Production = os.Getenv("ENV") == "production" || os.Getenv("GIN_MODE") == "release"

	switch theme := strings.ToLower(getEnv("RIPPLE_THEME", c.Theme)); theme {
	case "dark", "light":
		c.Theme = theme
	default:
		log.Warn("unknown theme, using default", "theme", theme, "default", c.Theme)
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		lvl, err := log.ParseLevel(v)
		if err != nil {
			log.Warn("invalid log level, using default", "value", v, "default", c.LogLevel)
		} else {
			c.LogLevel = lvl
		}
	}

	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		log.Warn("window size must be positive, using default", "width", c.WindowWidth, "height", c.WindowHeight)
		c.WindowWidth, c.WindowHeight = WindowWidth, WindowHeight
	}
	if c.TPS <= 0 {
		c.TPS = TPS
	}
	return c
}

// Addr is the web server listen address.
func (c Config) Addr() string {
	return c.WebHost + ":" + c.WebPort
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		log.Warn("invalid int, using default", "key", key, "err", err, "default", fallback)
		return fallback
	}
	return i
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		log.Warn("invalid duration, using default", "key", key, "err", err, "default", fallback)
		return fallback
	}
	return d
}

// Logger returns a leveled logger writing to stderr.
func (c Config) Logger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           c.LogLevel,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}
