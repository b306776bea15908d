// httpclient/config.go
package httpclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/deploymenttheory/go-api-sdk-amadeus/headers"
	"github.com/deploymenttheory/go-api-sdk-amadeus/logger"
)

// Environments selectable through ClientConfig.Hostname.
const (
	HostnameTest       = "test"
	HostnameProduction = "production"
)

var hostnames = map[string]string{
	HostnameTest:       "test.api.amadeus.com",
	HostnameProduction: "api.amadeus.com",
}

const (
	DefaultHostname            = HostnameTest
	DefaultSSLPort             = 443
	DefaultPlainPort           = 80
	DefaultCustomTimeout       = 10 * time.Second
	DefaultLogLevelString      = logger.LevelNameSilent
	DefaultLogOutputFormat     = logger.EncodingJSON
	DefaultLogConsoleSeparator = "\t"
	DefaultMaxRedirects        = 10
)

// HTTPExecutor performs a single HTTP round trip. *http.Client satisfies it; tests and callers
// with their own transport stack supply another implementation through ClientConfig.HTTPClient.
type HTTPExecutor interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds everything needed to build a Client. It is read once by BuildClient.
type ClientConfig struct {
	// Auth
	ClientID     string `json:"ClientID" yaml:"ClientID"`
	ClientSecret string `json:"ClientSecret" yaml:"ClientSecret"`

	// Environment. Hostname picks the Amadeus environment ("test" or "production");
	// Host overrides it. SSL is forced on when the host comes from Hostname.
	Hostname string `json:"Hostname" yaml:"Hostname"`
	Host     string `json:"Host" yaml:"Host"`
	Port     int    `json:"Port" yaml:"Port"`
	SSL      bool   `json:"SSL" yaml:"SSL"`
	// SSLCertificate is the path of a PEM bundle of CA certificates trusted for the API host.
	SSLCertificate string `json:"SSLCertificate" yaml:"SSLCertificate"`

	// Log
	LogLevel            string `json:"LogLevel" yaml:"LogLevel"`
	LogOutputFormat     string `json:"LogOutputFormat" yaml:"LogOutputFormat"` // "json" or "console"
	LogConsoleSeparator string `json:"LogConsoleSeparator" yaml:"LogConsoleSeparator"`
	LogExportPath       string `json:"LogExportPath" yaml:"LogExportPath"`
	HideSensitiveData   bool   `json:"HideSensitiveData" yaml:"HideSensitiveData"`

	// Transport
	CustomTimeout     time.Duration    `json:"-" yaml:"-"`
	AdditionalHeaders []headers.Header `json:"AdditionalHeaders" yaml:"AdditionalHeaders"`
	ProxyURL          string           `json:"ProxyURL" yaml:"ProxyURL"`
	MaxRedirects      int              `json:"MaxRedirects" yaml:"MaxRedirects"`
	HTTPClient        HTTPExecutor     `json:"-" yaml:"-"`

	// ProxyUsername and ProxyPassword replace credentials embedded in ProxyURL when both are set.
	ProxyUsername string `json:"ProxyUsername" yaml:"ProxyUsername"`
	ProxyPassword string `json:"ProxyPassword" yaml:"ProxyPassword"`

	// Token cache
	TokenCacheEnabled   bool   `json:"TokenCacheEnabled" yaml:"TokenCacheEnabled"`
	TokenCachePath      string `json:"TokenCachePath" yaml:"TokenCachePath"`
	TokenCacheRedisAddr string `json:"TokenCacheRedisAddr" yaml:"TokenCacheRedisAddr"`
}

// BaseURL returns scheme://host:port for the configured endpoint.
func (c ClientConfig) BaseURL() string {
	scheme := "http"
	if c.SSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.Host, c.Port)
}

// SetDefaultValuesClientConfig fills unset fields. Ensuring that all fields have a valid or minimum value.
func SetDefaultValuesClientConfig(config *ClientConfig) {
	if config.Hostname == "" {
		config.Hostname = DefaultHostname
	}

	if config.Host == "" {
		if host, ok := hostnames[strings.ToLower(config.Hostname)]; ok {
			config.Host = host
			config.SSL = true
		}
	}

	if config.Port == 0 {
		if config.SSL {
			config.Port = DefaultSSLPort
		} else {
			config.Port = DefaultPlainPort
		}
	}

	if config.CustomTimeout == 0 {
		config.CustomTimeout = DefaultCustomTimeout
	}

	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevelString
	}

	if config.LogOutputFormat == "" {
		config.LogOutputFormat = DefaultLogOutputFormat
	}

	if config.LogConsoleSeparator == "" {
		config.LogConsoleSeparator = DefaultLogConsoleSeparator
	}

	if config.MaxRedirects == 0 {
		config.MaxRedirects = DefaultMaxRedirects
	}
}

// validateClientConfig checks the configuration, optionally populating defaults first.
// The credentials are only checked for presence; Amadeus rejects bad ones at the token endpoint.
func validateClientConfig(config *ClientConfig, populateDefaults bool) error {
	if populateDefaults {
		SetDefaultValuesClientConfig(config)
	}

	if config.ClientID == "" {
		return errors.New("client id is required")
	}

	if config.ClientSecret == "" {
		return errors.New("client secret is required")
	}

	if config.Host == "" {
		if config.Hostname != "" {
			return fmt.Errorf("unknown hostname %q, expected %q or %q", config.Hostname, HostnameTest, HostnameProduction)
		}
		return errors.New("host is required")
	}

	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port %d out of range", config.Port)
	}

	if config.CustomTimeout < 0 {
		return errors.New("timeout cannot be less than 0 seconds")
	}

	if config.MaxRedirects < 0 {
		return errors.New("max redirects cannot be less than 0")
	}

	if config.LogLevel != "" && !logger.IsValidLogLevelName(config.LogLevel) {
		return fmt.Errorf("unknown log level %q", config.LogLevel)
	}

	return nil
}
