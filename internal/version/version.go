// Package version holds the build version, set with
// -ldflags "-X github.com/bnema/slack-tui/internal/version.Version=...".
package version

var Version = "dev"
