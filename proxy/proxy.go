// proxy.go

package proxy

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-amadeus/logger"
	"go.uber.org/zap"
)

// InitializeProxy points transport at proxyURL. Credentials embedded in the URL are used
// unless proxyUsername and proxyPassword are both set, in which case those win.
func InitializeProxy(transport *http.Transport, proxyURL, proxyUsername, proxyPassword string, log logger.Logger) error {
	if proxyURL == "" {
		return nil
	}

	parsedProxyURL, err := url.Parse(proxyURL)
	if err != nil {
		return log.Error("Failed to parse proxy URL", zap.Error(err))
	}
	if parsedProxyURL.Scheme == "" || parsedProxyURL.Host == "" {
		return fmt.Errorf("invalid proxy URL %q: scheme and host are required", proxyURL)
	}

	if proxyUsername != "" && proxyPassword != "" {
		parsedProxyURL.User = url.UserPassword(proxyUsername, proxyPassword)
	}

	transport.Proxy = http.ProxyURL(parsedProxyURL)

	log.Info("Proxy configured", zap.String("ProxyURL", parsedProxyURL.Redacted()))
	return nil
}
