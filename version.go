package quorum

// Release is the semantic version of this build. It can be overwritten
// during compilation:
//
//   go build -ldflags "-X github.com/iov-one/quorum.Release=v0.1.0"
var Release = "v0.1.0-dev"

// GitCommit set by build flags
var GitCommit = ""

// Version returns the release, followed by the git commit when known.
func Version() string {
	if GitCommit == "" {
		return Release
	}
	return Release + " " + GitCommit
}
