package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/breeew/gemini-ext/internal/core/srv"
)

const (
	DEFAULT_ADDR                = ":8080"
	DEFAULT_README_PATH         = "README.md"
	DEFAULT_MARKDOWN_ENDPOINT   = "https://api.github.com/markdown"
	DEFAULT_IMAGE_FETCH_TIMEOUT = 10
	DEFAULT_HTTP_CLIENT_TIMEOUT = 10
)

var DEFAULT_README_STYLESHEETS = []string{
	"https://krishna.stuffs.me/musicclub/user/folder/assets/css/bootstrap.css",
	"https://cdnjs.cloudflare.com/ajax/libs/github-markdown-css/5.2.0/github-markdown-dark.min.css",
	"https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css",
}

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var conf CoreConfig
	if err = toml.Unmarshal(raw, &conf); err != nil {
		panic(err)
	}
	conf.SetDefaults()
	return conf
}

func LoadBaseConfigFromENV() CoreConfig {
	_ = godotenv.Load()

	var c CoreConfig
	c.FromENV()
	c.SetDefaults()
	return c
}

type CoreConfig struct {
	Addr   string       `toml:"addr"`
	Log    Log          `toml:"log"`
	AI     srv.AIConfig `toml:"ai"`
	Image  Image        `toml:"image"`
	Readme Readme       `toml:"readme"`
	Limit  Limit        `toml:"limit"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("GEMEXT_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.AI.FromENV()
	c.Image.FromENV()
	c.Readme.FromENV()
	c.Limit.FromENV()
}

func (c *CoreConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = DEFAULT_ADDR
	}
	if c.Image.FetchTimeout <= 0 {
		c.Image.FetchTimeout = DEFAULT_IMAGE_FETCH_TIMEOUT
	}
	if c.Readme.Path == "" {
		c.Readme.Path = DEFAULT_README_PATH
	}
	if c.Readme.MarkdownEndpoint == "" {
		c.Readme.MarkdownEndpoint = DEFAULT_MARKDOWN_ENDPOINT
	}
	if len(c.Readme.Stylesheets) == 0 {
		c.Readme.Stylesheets = DEFAULT_README_STYLESHEETS
	}
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("GEMEXT_LOG_LEVEL")
	l.Path = os.Getenv("GEMEXT_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

type Image struct {
	// seconds
	FetchTimeout int `toml:"fetch_timeout"`
}

func (i *Image) FromENV() {
	i.FetchTimeout = envInt("GEMEXT_IMAGE_FETCH_TIMEOUT")
}

func (i Image) Timeout() time.Duration {
	return time.Duration(i.FetchTimeout) * time.Second
}

type Readme struct {
	Path             string   `toml:"path"`
	MarkdownEndpoint string   `toml:"markdown_endpoint"`
	Stylesheets      []string `toml:"stylesheets"`
}

func (r *Readme) FromENV() {
	r.Path = os.Getenv("GEMEXT_README_PATH")
	r.MarkdownEndpoint = os.Getenv("GEMEXT_README_MARKDOWN_ENDPOINT")
}

type Limit struct {
	// requests per minute and client ip, 0 disables the limiter
	PerMinute int `toml:"per_minute"`
}

func (l *Limit) FromENV() {
	l.PerMinute = envInt("GEMEXT_LIMIT_PER_MINUTE")
}

func envInt(key string) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return 0
	}
	return v
}
