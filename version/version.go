// version.go
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// AppName holds the name of the SDK as sent in the User-Agent header
var AppName = "amadeus-go"

// Version holds the current version of the SDK
var Version = "0.3.0"

// GetAppName returns the name of the SDK
func GetAppName() string {
	return AppName
}

// GetVersion returns the current version of the SDK
func GetVersion() string {
	return Version
}

// GetUserAgentHeader returns the User-Agent value sent with every request, e.g.
// "amadeus-go/0.3.0 go/1.22.4".
func GetUserAgentHeader() string {
	return fmt.Sprintf("%s/%s go/%s", AppName, Version, strings.TrimPrefix(runtime.Version(), "go"))
}
