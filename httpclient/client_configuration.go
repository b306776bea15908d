// httpclient/client_configuration.go
// Description: functions to load configuration values from a JSON or YAML file or environment variables.
package httpclient

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfigFromEnv.
const (
	EnvClientID          = "AMADEUS_CLIENT_ID"
	EnvClientSecret      = "AMADEUS_CLIENT_SECRET"
	EnvHostname          = "AMADEUS_HOSTNAME"
	EnvHost              = "AMADEUS_HOST"
	EnvPort              = "AMADEUS_PORT"
	EnvSSL               = "AMADEUS_SSL"
	EnvTimeout           = "AMADEUS_TIMEOUT"
	EnvLogLevel          = "AMADEUS_LOG_LEVEL"
	EnvSSLCertificate    = "AMADEUS_SSL_CERTIFICATE"
	EnvTokenCache        = "AMADEUS_TOKEN_CACHE"
	EnvTokenCachePath    = "AMADEUS_TOKEN_CACHE_PATH"
	EnvTokenCacheRedis   = "AMADEUS_TOKEN_CACHE_REDIS"
	EnvProxyURL          = "AMADEUS_PROXY_URL"
	EnvProxyUsername     = "AMADEUS_PROXY_USERNAME"
	EnvProxyPassword     = "AMADEUS_PROXY_PASSWORD"
	EnvHideSensitiveData = "AMADEUS_HIDE_SENSITIVE_DATA"
)

// configFile is the on-disk shape: ClientConfig plus the timeout in seconds.
type configFile struct {
	ClientConfig `yaml:",inline"`
	Timeout      float64 `json:"Timeout" yaml:"Timeout"`
}

// LoadConfigFromFile loads http client configuration settings from a .json, .yaml or .yml file.
// Timeout is given in seconds. Defaults are applied to missing fields.
func LoadConfigFromFile(path string) (*ClientConfig, error) {
	cleanPath, err := validateFilePath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	byteValue, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("could not read file: %w", err)
	}

	var file configFile
	switch strings.ToLower(filepath.Ext(cleanPath)) {
	case ".json":
		err = json.Unmarshal(byteValue, &file)
	default:
		err = yaml.Unmarshal(byteValue, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", filepath.Base(cleanPath), err)
	}

	config := file.ClientConfig
	if file.Timeout > 0 {
		config.CustomTimeout = secondsToDuration(file.Timeout)
	}

	SetDefaultValuesClientConfig(&config)

	return &config, nil
}

// LoadConfigFromEnv builds a configuration from AMADEUS_* environment variables.
// Any envFiles are loaded first with godotenv; variables already set in the process win.
func LoadConfigFromEnv(envFiles ...string) (*ClientConfig, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("loading env files: %w", err)
		}
	}

	config := &ClientConfig{
		ClientID:            getEnvOrDefault(EnvClientID, ""),
		ClientSecret:        getEnvOrDefault(EnvClientSecret, ""),
		Hostname:            getEnvOrDefault(EnvHostname, ""),
		Host:                getEnvOrDefault(EnvHost, ""),
		SSL:                 parseBool(getEnvOrDefault(EnvSSL, "false")),
		SSLCertificate:      getEnvOrDefault(EnvSSLCertificate, ""),
		LogLevel:            getEnvOrDefault(EnvLogLevel, ""),
		HideSensitiveData:   parseBool(getEnvOrDefault(EnvHideSensitiveData, "false")),
		ProxyURL:            getEnvOrDefault(EnvProxyURL, ""),
		ProxyUsername:       getEnvOrDefault(EnvProxyUsername, ""),
		ProxyPassword:       getEnvOrDefault(EnvProxyPassword, ""),
		TokenCacheEnabled:   parseBool(getEnvOrDefault(EnvTokenCache, "false")),
		TokenCachePath:      getEnvOrDefault(EnvTokenCachePath, ""),
		TokenCacheRedisAddr: getEnvOrDefault(EnvTokenCacheRedis, ""),
	}

	if raw := getEnvOrDefault(EnvPort, ""); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid %s %q: expected a port number", EnvPort, raw)
		}
		config.Port = port
	}

	if raw := getEnvOrDefault(EnvTimeout, ""); raw != "" {
		seconds, err := strconv.ParseFloat(raw, 64)
		if err != nil || seconds < 0 {
			return nil, fmt.Errorf("invalid %s %q: expected seconds", EnvTimeout, raw)
		}
		config.CustomTimeout = secondsToDuration(seconds)
	}

	SetDefaultValuesClientConfig(config)

	return config, nil
}

func validateFilePath(path string) (string, error) {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return "", fmt.Errorf("invalid path, path traversal patterns detected: %s", path)
	}

	switch strings.ToLower(filepath.Ext(cleanPath)) {
	case ".json", ".yaml", ".yml":
		return cleanPath, nil
	default:
		return "", fmt.Errorf("invalid file extension for configuration file: %s, expected .json, .yaml or .yml", path)
	}
}

// Helper function to get environment variable or default value
func getEnvOrDefault(envKey string, defaultValue string) string {
	if value, exists := os.LookupEnv(envKey); exists {
		return value
	}
	return defaultValue
}

// Helper function to parse boolean from environment variable
func parseBool(value string) bool {
	result, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return result
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
