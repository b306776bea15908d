// httpclient/client.go
/* Package httpclient is the transport core of the Amadeus SDK. It obtains and renews the OAuth2
client-credentials access token, builds and executes HTTP requests against the configured Amadeus
host and classifies failures into typed errors. Resource-specific helpers are layered on top of
Execute and the Get/Post convenience methods. */
package httpclient

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"

	"github.com/deploymenttheory/go-api-sdk-amadeus/logger"
	"github.com/deploymenttheory/go-api-sdk-amadeus/proxy"
	"github.com/deploymenttheory/go-api-sdk-amadeus/redirecthandler"
	"github.com/deploymenttheory/go-api-sdk-amadeus/tokencache"
	"go.uber.org/zap"
)

// Client executes requests against one Amadeus endpoint. Clients share no state with each other.
type Client struct {
	config      ClientConfig
	http        HTTPExecutor
	accessToken *AccessToken

	Logger logger.Logger
}

// BuildClient creates a new client with the provided configuration, building the logger from it.
func BuildClient(config ClientConfig, populateDefaultValues bool) (*Client, error) {
	parsedLogLevel := logger.ParseLogLevelFromString(config.LogLevel)
	log := logger.BuildLogger(parsedLogLevel, config.LogOutputFormat, config.LogConsoleSeparator, config.LogExportPath, config.HideSensitiveData)
	return BuildClientWithLogger(config, populateDefaultValues, log)
}

// BuildClientWithLogger is BuildClient with a caller-supplied logger.
func BuildClientWithLogger(config ClientConfig, populateDefaultValues bool, log logger.Logger) (*Client, error) {
	if err := validateClientConfig(&config, populateDefaultValues); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	//region HTTP

	executor := config.HTTPClient
	if executor == nil {
		httpClient, err := buildHTTPClient(config, log)
		if err != nil {
			return nil, err
		}
		executor = httpClient
	}

	//endregion

	client := &Client{
		config: config,
		http:   executor,
		Logger: log,
	}
	client.accessToken = newAccessToken(client, tokenStore(config))

	log.Debug("New API client initialized",
		zap.String("Base URL", config.BaseURL()),
		zap.String("Logging Level", config.LogLevel),
		zap.String("Log Encoding Format", config.LogOutputFormat),
		zap.Bool("Hide Sensitive Data In Logs", config.HideSensitiveData),
		zap.Duration("Custom Timeout", config.CustomTimeout),
		zap.Int("Max Redirects", config.MaxRedirects),
		zap.Bool("Token Cache Enabled", config.TokenCacheEnabled),
		zap.Bool("Proxy Enabled", config.ProxyURL != ""),
	)

	return client, nil
}

// AccessToken returns the token holder of the client.
func (c *Client) AccessToken() *AccessToken {
	return c.accessToken
}

// Config returns a copy of the configuration the client was built with.
func (c *Client) Config() ClientConfig {
	return c.config
}

func buildHTTPClient(config ClientConfig, log logger.Logger) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if config.SSLCertificate != "" {
		tlsConfig, err := loadCertificateBundle(config.SSLCertificate)
		if err != nil {
			return nil, log.Error("Failed to load SSL certificate bundle", zap.String("path", config.SSLCertificate), zap.Error(err))
		}
		transport.TLSClientConfig = tlsConfig
	}

	if err := proxy.InitializeProxy(transport, config.ProxyURL, config.ProxyUsername, config.ProxyPassword, log); err != nil {
		return nil, fmt.Errorf("configuring proxy: %w", err)
	}

	httpClient := &http.Client{
		Timeout:   config.CustomTimeout,
		Transport: transport,
	}
	redirecthandler.SetupRedirectHandler(httpClient, config.MaxRedirects, log)

	return httpClient, nil
}

// loadCertificateBundle trusts the PEM certificates at path for server verification.
func loadCertificateBundle(path string) (*tls.Config, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no PEM certificates found in %s", path)
	}
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		RootCAs:    pool,
	}, nil
}

func tokenStore(config ClientConfig) tokencache.Store {
	if !config.TokenCacheEnabled {
		return nil
	}
	if config.TokenCacheRedisAddr != "" {
		return tokencache.NewRedisStoreFromAddr(config.TokenCacheRedisAddr, config.ClientID)
	}
	path := config.TokenCachePath
	if path == "" {
		path = tokencache.DefaultFilePath(config.ClientID)
	}
	return tokencache.NewFileStore(path)
}
