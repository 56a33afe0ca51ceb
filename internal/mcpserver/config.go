package mcpserver

import (
	"time"

	"github.com/erraggy/oaspostman/internal/envutil"
	"github.com/erraggy/oaspostman/patcher"
	"github.com/erraggy/oaspostman/postman"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheURLTTL        time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Input limits.
	MaxInlineSize   int64
	AllowPrivateIPs bool

	// Convert tool defaults.
	BaseURL    string
	APIVersion string

	// Validate tool defaults.
	ValidateStrict bool
	IssueLimit     int
	MaxLimit       int

	// Patch tool defaults.
	PatchWorkers   int
	PatchLookahead int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASPOSTMAN_* environment variables.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envutil.Bool("OASPOSTMAN_CACHE_ENABLED", true),
		CacheMaxSize:       envutil.Int("OASPOSTMAN_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envutil.Duration("OASPOSTMAN_CACHE_FILE_TTL", 15*time.Minute),
		CacheURLTTL:        envutil.Duration("OASPOSTMAN_CACHE_URL_TTL", 5*time.Minute),
		CacheContentTTL:    envutil.Duration("OASPOSTMAN_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envutil.Duration("OASPOSTMAN_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxInlineSize:      envutil.Int64("OASPOSTMAN_SERVE_MAX_BODY", 10*1024*1024),
		AllowPrivateIPs:    envutil.Bool("OASPOSTMAN_ALLOW_PRIVATE_IPS", false),
		BaseURL:            envutil.String("OASPOSTMAN_BASE_URL", postman.DefaultBaseURL),
		APIVersion:         envutil.String("OASPOSTMAN_API_VERSION", postman.DefaultAPIVersion),
		ValidateStrict:     envutil.Bool("OASPOSTMAN_VALIDATE_STRICT", false),
		IssueLimit:         envutil.Int("OASPOSTMAN_ISSUE_LIMIT", 100),
		MaxLimit:           envutil.Int("OASPOSTMAN_MAX_LIMIT", 1000),
		PatchWorkers:       envutil.Int("OASPOSTMAN_PATCH_WORKERS", 4),
		PatchLookahead:     envutil.Int("OASPOSTMAN_PATCH_LOOKAHEAD", patcher.DefaultLookahead),
	}
}
