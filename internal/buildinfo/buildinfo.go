// Package buildinfo holds build metadata set with -ldflags, e.g.
//
//	-X github.com/garyellow/askuenr-go/internal/buildinfo.Version=v1.2.0
package buildinfo

var (
	Version = "" // release tag
	Commit  = "" // git SHA
)

// VersionOrDev returns Version, or "dev" for local builds.
func VersionOrDev() string {
	if Version == "" {
		return "dev"
	}
	return Version
}
