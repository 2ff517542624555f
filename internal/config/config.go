package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/platform/logging"
)

// Config stores runtime configuration for the API and web services.
type Config struct {
	AppEnv                       string
	ServiceName                  string
	ServiceVersion               string
	HTTPAddr                     string
	WebAddr                      string
	DBURL                        string
	DBDisablePreparedBinary      bool
	DBBootstrapSeed              bool
	CacheEnabled                 bool
	CacheTTL                     time.Duration
	CORSAllowedOrigins           []string
	ReadTimeout                  time.Duration
	WriteTimeout                 time.Duration
	PprofEnabled                 bool
	PprofAddr                    string
	ClubAuthBaseURL              string
	ClubAuthIntrospectPath       string
	ClubAuthTimeout              time.Duration
	ClubAuthCircuitEnabled       bool
	ClubAuthCircuitFailureCount  int
	ClubAuthCircuitOpenTimeout   time.Duration
	ClubAuthCircuitHalfOpenMax   int
	UptraceEnabled               bool
	UptraceDSN                   string
	PyroscopeEnabled             bool
	PyroscopeServerAddress       string
	PyroscopeAppName             string
	PyroscopeAuthToken           string
	PyroscopeBasicAuthUser       string
	PyroscopeBasicAuthPassword   string
	PyroscopeUploadRate          time.Duration
	InternalJobToken             string
	UploadDir                    string
	UploadMaxBytes               int
	APIBaseURL                   string
	APITimeout                   time.Duration
	APICircuitEnabled            bool
	APICircuitFailureCount       int
	APICircuitOpenTimeout        time.Duration
	APICircuitHalfOpenMax        int
	LivePollInterval             time.Duration
	MockFallbackEnabled          bool
	LogLevel                     logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	uploadMaxBytes, err := getEnvAsInt("UPLOAD_MAX_BYTES", 5<<20)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPLOAD_MAX_BYTES: %w", err)
	}
	if uploadMaxBytes <= 0 {
		return Config{}, fmt.Errorf("UPLOAD_MAX_BYTES must be > 0")
	}

	livePollInterval, err := time.ParseDuration(getEnv("LIVE_POLL_INTERVAL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_POLL_INTERVAL: %w", err)
	}
	if livePollInterval <= 0 {
		return Config{}, fmt.Errorf("LIVE_POLL_INTERVAL must be > 0")
	}

	mockFallbackEnabled, err := strconv.ParseBool(getEnv("MOCK_FALLBACK_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse MOCK_FALLBACK_ENABLED: %w", err)
	}

	cfg := Config{
		AppEnv:                  appEnv,
		ServiceName:             getEnv("APP_SERVICE_NAME", "club-deportivo-quito-api"),
		ServiceVersion:          getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                getEnv("APP_HTTP_ADDR", ":8080"),
		WebAddr:                 getEnv("APP_WEB_ADDR", ":3000"),
		DBURL:                   getEnv("DB_URL", ""),
		DBDisablePreparedBinary: true,
		CORSAllowedOrigins:      splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofEnabled:            pprofEnabled,
		PprofAddr:               pprofAddr,
		ClubAuthBaseURL:         getEnv("CLUBAUTH_BASE_URL", "http://localhost:8081"),
		ClubAuthIntrospectPath:  getEnv("CLUBAUTH_INTROSPECT_PATH", "/v1/auth/introspect"),
		UptraceEnabled:          uptraceEnabled,
		UptraceDSN:              uptraceDSN,
		PyroscopeEnabled:        pyroscopeEnabled,
		PyroscopeServerAddress:  pyroscopeServerAddress,
		PyroscopeAuthToken:      strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:  strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:     pyroscopeUploadRate,
		InternalJobToken:        strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		UploadDir:               getEnv("UPLOAD_DIR", "uploads"),
		UploadMaxBytes:          uploadMaxBytes,
		APIBaseURL:              getEnv("API_BASE_URL", "http://localhost:8080"),
		LivePollInterval:        livePollInterval,
		MockFallbackEnabled:     mockFallbackEnabled,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	cfg.DBDisablePreparedBinary = dbDisablePreparedBinary

	dbBootstrapSeed, err := strconv.ParseBool(getEnv("DB_BOOTSTRAP_SEED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_BOOTSTRAP_SEED: %w", err)
	}
	cfg.DBBootstrapSeed = dbBootstrapSeed

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}
	cfg.CacheEnabled = cacheEnabled
	cfg.CacheTTL = cacheTTL

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	clubAuthTimeout, err := time.ParseDuration(getEnv("CLUBAUTH_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CLUBAUTH_TIMEOUT: %w", err)
	}

	clubAuthCircuitEnabled, err := strconv.ParseBool(getEnv("CLUBAUTH_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CLUBAUTH_CIRCUIT_ENABLED: %w", err)
	}

	clubAuthCircuitFailureCount, err := getEnvAsInt("CLUBAUTH_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse CLUBAUTH_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if clubAuthCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("CLUBAUTH_CIRCUIT_FAILURE_COUNT must be >= 1")
	}

	clubAuthCircuitOpenTimeout, err := time.ParseDuration(getEnv("CLUBAUTH_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CLUBAUTH_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if clubAuthCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("CLUBAUTH_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}

	clubAuthCircuitHalfOpenMax, err := getEnvAsInt("CLUBAUTH_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse CLUBAUTH_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if clubAuthCircuitHalfOpenMax < 1 {
		return Config{}, fmt.Errorf("CLUBAUTH_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	apiTimeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse API_TIMEOUT: %w", err)
	}
	if apiTimeout <= 0 {
		return Config{}, fmt.Errorf("API_TIMEOUT must be > 0")
	}

	apiCircuitEnabled, err := strconv.ParseBool(getEnv("API_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse API_CIRCUIT_ENABLED: %w", err)
	}
	apiCircuitFailureCount, err := getEnvAsInt("API_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse API_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if apiCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("API_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	apiCircuitOpenTimeout, err := time.ParseDuration(getEnv("API_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse API_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if apiCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("API_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	apiCircuitHalfOpenMax, err := getEnvAsInt("API_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse API_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if apiCircuitHalfOpenMax < 1 {
		return Config{}, fmt.Errorf("API_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	logLevel := parseLogLevel(getEnv("APP_LOG_LEVEL", "info"))

	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout
	cfg.ClubAuthTimeout = clubAuthTimeout
	cfg.ClubAuthCircuitEnabled = clubAuthCircuitEnabled
	cfg.ClubAuthCircuitFailureCount = clubAuthCircuitFailureCount
	cfg.ClubAuthCircuitOpenTimeout = clubAuthCircuitOpenTimeout
	cfg.ClubAuthCircuitHalfOpenMax = clubAuthCircuitHalfOpenMax
	cfg.APITimeout = apiTimeout
	cfg.APICircuitEnabled = apiCircuitEnabled
	cfg.APICircuitFailureCount = apiCircuitFailureCount
	cfg.APICircuitOpenTimeout = apiCircuitOpenTimeout
	cfg.APICircuitHalfOpenMax = apiCircuitHalfOpenMax
	cfg.LogLevel = logLevel

	return cfg, nil
}

// IncludeErrorDetail reports whether API error responses may carry raw
// error text. Production responses never do.
func (c Config) IncludeErrorDetail() bool {
	return c.AppEnv != EnvProd
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
