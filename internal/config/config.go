package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Compiled-in site identity. Each value can be overridden from the environment.
const (
	DefaultTitle        = "thisisamank"
	DefaultDescription  = "Notes, essays and links from Aman."
	DefaultAuthorName   = "Aman"
	DefaultSocialHandle = "@thisisamank"
)

// EnvSiteURL is the only required variable: the absolute URL the site is served from.
const EnvSiteURL = "SITE_URL"

// Site is the read-only site identity shared with every collaborator.
type Site struct {
	Title        string
	Description  string
	AuthorName   string
	SocialHandle string
	BaseURL      string // origin only, ex: "https://example.com"
}

type Config struct {
	Site Site

	ContentDir        string   // root of the content tree (ex: "content/blog")
	ContentExtensions []string // file extensions treated as entries (ex: ".md", ".mdx")
	SkipInvalid       bool     // true => log and skip invalid entries, false => fail the load
	ParseWorkers      int      // max sources parsed concurrently

	ListenAddr      string        // ex: ":4321"
	ShutdownTimeout time.Duration // ex: 5s
	ReloadInterval  time.Duration // 0 => reload only on demand
	PreviewDrafts   bool          // allow the preview API to list drafts

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)
}

// ConfigError reports a missing or malformed configuration value.
// It is fatal: nothing can be linked without a base URL.
type ConfigError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("config: %s: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("config: %s=%q: %s", e.Key, e.Value, e.Reason)
}

// Load builds the process configuration from the environment.
func Load() (*Config, error) {
	raw, ok := os.LookupEnv(EnvSiteURL)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, &ConfigError{Key: EnvSiteURL, Reason: "required environment variable is not set"}
	}
	origin, err := Origin(raw)
	if err != nil {
		return nil, &ConfigError{Key: EnvSiteURL, Value: raw, Reason: err.Error()}
	}

	cfg := &Config{
		Site: Site{
			Title:        getenv("SITE_TITLE", DefaultTitle),
			Description:  getenv("SITE_DESCRIPTION", DefaultDescription),
			AuthorName:   getenv("SITE_AUTHOR", DefaultAuthorName),
			SocialHandle: getenv("SITE_SOCIAL_HANDLE", DefaultSocialHandle),
			BaseURL:      origin,
		},

		// Content
		ContentDir:        getenv("SITE_CONTENT_DIR", "content/blog"),
		ContentExtensions: parseExtensions(getenv("SITE_CONTENT_EXTENSIONS", ".md,.mdx")),
		SkipInvalid:       mustBool("SITE_SKIP_INVALID", false),
		ParseWorkers:      getenvInt("SITE_PARSE_WORKERS", 4),

		// Preview server
		ListenAddr:      getenv("SITE_LISTEN_ADDR", ":4321"),
		ShutdownTimeout: mustDuration("SITE_SHUTDOWN_TIMEOUT", 5*time.Second),
		ReloadInterval:  mustDuration("SITE_RELOAD_INTERVAL", 0),
		PreviewDrafts:   mustBool("SITE_PREVIEW_DRAFTS", false),

		// Logging
		LogLevel:  getenv("SITE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("SITE_PRETTY_LOG", true),
	}

	if cfg.ParseWorkers < 1 {
		cfg.ParseWorkers = 1
	}
	if len(cfg.ContentExtensions) == 0 {
		return nil, &ConfigError{Key: "SITE_CONTENT_EXTENSIONS", Reason: "at least one extension is required"}
	}

	return cfg, nil
}

// Origin reduces an absolute URL to scheme://host[:port].
// Example: "https://example.com/base/?q=1" -> "https://example.com"
func Origin(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("must be an absolute url with scheme and host")
	}
	if u.User != nil {
		return "", fmt.Errorf("must not carry credentials")
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", fmt.Errorf("must be an absolute url with scheme and host")
	}
	if port := u.Port(); port != "" {
		host = net.JoinHostPort(host, port)
	} else if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return strings.ToLower(u.Scheme) + "://" + host, nil
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// parseExtensions normalizes "md, .MDX" into [".md", ".mdx"], dropping duplicates.
func parseExtensions(s string) []string {
	seen := make(map[string]bool)
	var exts []string
	for _, part := range strings.Split(s, ",") {
		ext := strings.ToLower(strings.Trim(strings.TrimSpace(part), `"'`))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if !seen[ext] {
			seen[ext] = true
			exts = append(exts, ext)
		}
	}
	return exts
}
