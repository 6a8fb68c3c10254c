// Package version carries the build version of validenv programs.
//
// Values are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/validenv/version.Version=1.0.0 \
//	  -X github.com/kbukum/validenv/version.GitCommit=$(git rev-parse --short HEAD)"
//
// When they are not set, module build info (vcs.revision, vcs.modified) is
// used instead.
package version
