package version

var (
	Version = "v0.1.0"
	Meta    = "dev"
)

// WithMeta formats the full version string, including build metadata when
// set at link time.
func WithMeta(gitCommit, gitDate string) string {
	v := Version
	if gitCommit != "" {
		if len(gitCommit) >= 8 {
			gitCommit = gitCommit[:8]
		}
		v += "-" + gitCommit
	}
	if gitDate != "" {
		v += "-" + gitDate
	}
	if Meta != "" {
		v += "-" + Meta
	}
	return v
}
