// version_test.go
package version

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetUserAgentHeader verifies that the GetUserAgentHeader function returns the expected user agent string
func TestGetUserAgentHeader(t *testing.T) {
	expectedUserAgent := fmt.Sprintf("%s/%s go/%s", AppName, Version, strings.TrimPrefix(runtime.Version(), "go"))
	userAgent := GetUserAgentHeader()

	assert.Equal(t, expectedUserAgent, userAgent, "User agent string should match expected format")
	assert.True(t, strings.HasPrefix(userAgent, "amadeus-go/"))
}

func TestGetAppNameAndVersion(t *testing.T) {
	assert.Equal(t, AppName, GetAppName())
	assert.Equal(t, Version, GetVersion())
}
