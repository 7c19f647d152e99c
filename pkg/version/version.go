// Package version exposes the mcpbridge build version.
package version

// version is overridden at build time via
// -ldflags "-X github.com/mcpbridge/mcpbridge/pkg/version.version=x.y.z"
var version = "dev"

// GetVersion returns the version of the mcpbridge binary.
func GetVersion() string {
	return version
}
