package startup

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"media-picker/internal/logging"
	"media-picker/internal/resize"
	"media-picker/internal/tempfiles"

	"github.com/gorilla/mux"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// RouteInfo contains information about a registered route
type RouteInfo struct {
	Method string
	Path   string
	Name   string
}

// Config holds all application configuration
type Config struct {
	TempDir         string
	OwnerPrefix     string
	ResizeStrategy  string
	MaxDimension    int
	JPEGQuality     int
	Port            string
	MetricsPort     string
	MetricsEnabled  bool
	LogHealthChecks bool
	StatsInterval   time.Duration

	// VipsEnabled is set when the vectorized strategy is selected
	VipsEnabled bool
}

// LoadConfig loads and validates configuration from environment variables.
// With quiet set the banner and system information are skipped.
func LoadConfig(quiet bool) (*Config, error) {
	if !quiet {
		printBanner()
		logSystemInfo()
	}

	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")

	tempDir := getEnv("PICKER_TEMP_DIR", os.TempDir())
	ownerPrefix := getEnv("PICKER_OWNER_PREFIX", tempfiles.DefaultPrefix)
	strategy := getEnv("RESIZE_STRATEGY", resize.DefaultStrategy)
	maxDimension := getEnvInt("MAX_DIMENSION", resize.DefaultMaxDimension)
	jpegQuality := getEnvInt("JPEG_QUALITY", 50)
	port := getEnv("PORT", "8080")
	metricsPort := getEnv("METRICS_PORT", "9090")
	metricsEnabled := getEnvBool("METRICS_ENABLED", true)
	logHealthChecks := getEnvBool("LOG_HEALTH_CHECKS", true)
	statsIntervalStr := getEnv("STATS_INTERVAL", "1m")

	logging.Info("  PICKER_TEMP_DIR:     %s", tempDir)
	logging.Info("  PICKER_OWNER_PREFIX: %s", ownerPrefix)
	logging.Info("  RESIZE_STRATEGY:     %s", strategy)
	logging.Info("  MAX_DIMENSION:       %d", maxDimension)
	logging.Info("  JPEG_QUALITY:        %d", jpegQuality)
	logging.Info("  PORT:                %s", port)
	logging.Info("  METRICS_PORT:        %s", metricsPort)
	logging.Info("  METRICS_ENABLED:     %v", metricsEnabled)
	logging.Info("  LOG_HEALTH_CHECKS:   %v", logHealthChecks)
	logging.Info("  STATS_INTERVAL:      %s", statsIntervalStr)
	logging.Info("  LOG_LEVEL:           %s", logging.GetLevel())

	if _, ok := resize.Get(strategy); !ok {
		logging.Warn("  Invalid RESIZE_STRATEGY %q (available: %s), using default: %s",
			strategy, strings.Join(resize.Names(), ", "), resize.DefaultStrategy)
		strategy = resize.DefaultStrategy
	}

	if maxDimension <= 0 {
		logging.Warn("  Invalid MAX_DIMENSION, using default: %d", resize.DefaultMaxDimension)
		maxDimension = resize.DefaultMaxDimension
	}

	if jpegQuality < 1 || jpegQuality > 100 {
		logging.Warn("  Invalid JPEG_QUALITY, using default: 50")
		jpegQuality = 50
	}

	statsInterval, err := time.ParseDuration(statsIntervalStr)
	if err != nil || statsInterval <= 0 {
		logging.Warn("  Invalid STATS_INTERVAL, using default: 1m")
		statsInterval = time.Minute
	}

	if ownerPrefix == "" {
		return nil, fmt.Errorf("PICKER_OWNER_PREFIX must not be empty")
	}

	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("DIRECTORY SETUP")
	logging.Info("------------------------------------------------------------")

	tempDir, err = filepath.Abs(tempDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve temp directory path: %w", err)
	}
	logging.Info("  Temp directory (absolute): %s", tempDir)

	if err := ensureDirectory(tempDir); err != nil {
		return nil, fmt.Errorf("temp directory error: %w", err)
	}

	logging.Debug("  Testing temp directory write access...")
	if err := testWriteAccess(tempDir, ownerPrefix); err != nil {
		return nil, fmt.Errorf("temp directory is not writable (required for file results): %w", err)
	}
	logging.Info("  [OK] Temp directory is writable")

	config := &Config{
		TempDir:         tempDir,
		OwnerPrefix:     ownerPrefix,
		ResizeStrategy:  strategy,
		MaxDimension:    maxDimension,
		JPEGQuality:     jpegQuality,
		Port:            port,
		MetricsPort:     metricsPort,
		MetricsEnabled:  metricsEnabled,
		LogHealthChecks: logHealthChecks,
		StatsInterval:   statsInterval,
		VipsEnabled:     strategy == resize.Vectorized,
	}

	logging.Info("")
	logging.Info("  Feature availability:")
	logging.Info("    libvips:     %s", enabledString(config.VipsEnabled))
	logging.Info("    Metrics:     %s", enabledString(config.MetricsEnabled))

	return config, nil
}

func enabledString(enabled bool) string {
	if enabled {
		return "ENABLED"
	}
	return "DISABLED"
}

// LogResizerInit logs the resize strategy and libvips state
func LogResizerInit(strategy string, maxDimension int, vipsErr error) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("RESIZER INITIALIZATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Strategy:       %s", strategy)
	logging.Info("  Max dimension:  %d", maxDimension)

	if strategy != resize.Vectorized {
		return
	}
	if vipsErr != nil {
		logging.Warn("  libvips initialization failed: %v", vipsErr)
		logging.Warn("  Photos will be returned unscaled")
		return
	}
	logging.Info("  [OK] libvips is available")
}

// GetRoutes extracts all registered routes from a mux.Router
func GetRoutes(router *mux.Router) ([]RouteInfo, error) {
	var routes []RouteInfo

	err := router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			return err
		}

		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"*"}
		}

		for _, method := range methods {
			routes = append(routes, RouteInfo{
				Method: method,
				Path:   pathTemplate,
				Name:   route.GetName(),
			})
		}

		return nil
	})

	return routes, err
}

// LogHTTPRoutes logs all registered HTTP routes dynamically
func LogHTTPRoutes(router *mux.Router, logHealthChecks bool) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("HTTP SERVER SETUP")
	logging.Info("------------------------------------------------------------")

	if logging.IsDebugEnabled() {
		routes, err := GetRoutes(router)
		if err != nil {
			logging.Warn("error walking routes: %v", err)
		}

		logging.Debug("  Registered routes (%d total):", len(routes))

		groups := make(map[string][]RouteInfo)
		for _, route := range routes {
			prefix := getRouteGroup(route.Path)
			groups[prefix] = append(groups[prefix], route)
		}

		groupKeys := make([]string, 0, len(groups))
		for k := range groups {
			groupKeys = append(groupKeys, k)
		}
		sort.Strings(groupKeys)

		for _, group := range groupKeys {
			if group != "" {
				logging.Debug("  [%s]", group)
			} else {
				logging.Debug("  [root]")
			}
			for _, route := range groups[group] {
				logging.Debug("    %-6s %s", route.Method, route.Path)
			}
		}
	}

	if logHealthChecks {
		logging.Info("  Health check logging: ON")
	} else {
		logging.Info("  Health check logging: OFF (set LOG_HEALTH_CHECKS=true to enable)")
	}
}

// getRouteGroup extracts a group name from a route path
func getRouteGroup(path string) string {
	path = strings.TrimPrefix(path, "/")

	parts := strings.SplitN(path, "/", 2)
	first := parts[0]

	if first == "api" && len(parts) > 1 {
		subParts := strings.SplitN(parts[1], "/", 2)
		return "api/" + subParts[0]
	}

	return first
}

// ServerConfig holds configuration for the server startup log
type ServerConfig struct {
	Port            string
	MetricsPort     string
	MetricsEnabled  bool
	StartupDuration time.Duration
}

// LogServerStarted logs successful server start with all endpoint information
func LogServerStarted(config ServerConfig) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SERVER STARTED")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Startup time:    %v", config.StartupDuration)
	logging.Info("")
	logging.Info("  Endpoints:")
	logging.Info("    Commands:      http://localhost:%s/api/{action}", config.Port)
	if config.MetricsEnabled {
		logging.Info("    Metrics:       http://localhost:%s/metrics", config.MetricsPort)
	} else {
		logging.Info("    Metrics:       DISABLED")
	}
	logging.Info("")
	logging.Info("  Press Ctrl+C to stop the server")
	logging.Info("------------------------------------------------------------")
}

// LogShutdownInitiated logs shutdown start
func LogShutdownInitiated(signal string) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SHUTDOWN INITIATED (received %s)", signal)
	logging.Info("------------------------------------------------------------")
}

// LogShutdownStep logs a shutdown step
func LogShutdownStep(step string) {
	logging.Debug("  %s...", step)
}

// LogShutdownStepComplete logs a completed shutdown step
func LogShutdownStepComplete(step string) {
	logging.Info("  [OK] %s", step)
}

// LogShutdownComplete logs shutdown completion
func LogShutdownComplete() {
	logging.Info("  [OK] Shutdown complete")
}

// Helper functions

func printBanner() {
	banner := `
------------------------------------------------------------
    __  ___         ___         ____  _      __
   /  |/  /__  ____/ (_)___ _  / __ \(_)____/ /_____  _____
  / /|_/ / _ \/ __  / / __ '/ / /_/ / / ___/ //_/ _ \/ ___/
 / /  / /  __/ /_/ / / /_/ / / ____/ / /__/ ,< /  __/ /
/_/  /_/\___/\__,_/_/\__,_/ /_/   /_/\___/_/|_|\___/_/

------------------------------------------------------------`
	fmt.Fprintln(os.Stderr, banner)
	logging.Info("  Version:    %s", Version)
	logging.Info("  Commit:     %s", Commit)
	logging.Info("  Build Time: %s", BuildTime)
	logging.Info("  Started:    %s", time.Now().Format(time.RFC1123))
	logging.Info("")
}

func logSystemInfo() {
	logging.Info("------------------------------------------------------------")
	logging.Info("SYSTEM INFORMATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Go version:      %s", runtime.Version())
	logging.Info("  OS/Arch:         %s/%s", runtime.GOOS, runtime.GOARCH)
	logging.Info("  CPUs available:  %d", runtime.NumCPU())
	logging.Info("  GOMAXPROCS:      %d", runtime.GOMAXPROCS(0))

	if logging.IsDebugEnabled() {
		if wd, err := os.Getwd(); err == nil {
			logging.Debug("  Working dir:     %s", wd)
		}
		if hostname, err := os.Hostname(); err == nil {
			logging.Debug("  Hostname:        %s", hostname)
		}
	}

	logging.Info("")
}

func ensureDirectory(path string) error {
	logging.Debug("  Checking temp directory: %s", path)

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		logging.Debug("    Directory does not exist, creating...")
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
		logging.Debug("    [OK] Created directory: %s", path)
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to stat directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("path exists but is not a directory")
	}

	logging.Debug("    [OK] Directory exists")
	return nil
}

// testWriteAccess writes and removes a probe file. The probe carries the
// owner prefix so a crash in between leaves it for cleanup.
func testWriteAccess(dir, prefix string) error {
	testFile := filepath.Join(dir, prefix+".write-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o644); err != nil {
		return err
	}
	if err := os.Remove(testFile); err != nil {
		logging.Warn("failed to remove write test file %s: %v", testFile, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logging.Warn("Invalid integer value for %s: %q, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
