// Package version derives the running build's identity. An -ldflags
// override wins, then the VCS revision stamped into the build info,
// then "dev".
package version

import "runtime/debug"

// AppName appears in log lines, health responses and user-agent strings.
const AppName = "conductor"

// gitCommitOverride is injected at build time:
//
//	go build -ldflags "-X github.com/conductorhq/conductor/pkg/version.gitCommitOverride=$SHA"
//
// Container builds use it when .git is not in the build context.
var gitCommitOverride string

// GitCommit is the short commit hash, or "dev" when no build metadata
// is available, as under `go test`.
var GitCommit = initGitCommit()

func initGitCommit() string {
	if gitCommitOverride != "" {
		return short(gitCommitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "dev"
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "conductor/<commit>" for user-agent strings.
func Full() string {
	return AppName + "/" + GitCommit
}
