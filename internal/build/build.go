// Package build holds build-time configuration stamped by the release
// pipeline.
package build

// Release is empty for development builds and set by the release pipeline:
//
//	go build -ldflags "-X github.com/movey-net/movey-cli/internal/build.Release=1"
var Release string

const (
	stagingURL    = "https://movey-app-staging.herokuapp.com"
	productionURL = "https://movey.net"
)

// RegistryURL returns the Movey registry base URL for this build.
// Development builds talk to the staging registry.
func RegistryURL() string {
	if Release != "" {
		return productionURL
	}
	return stagingURL
}
