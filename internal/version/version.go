package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/theodox/attributeEvents/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/theodox/attributeEvents/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/theodox/attributeEvents/internal/version.Date={{.Date}}
)
