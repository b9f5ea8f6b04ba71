package version

import "github.com/blang/semver/v4"

// Version is the version of the build.
// NOTE: remember to bump the version at the top
// of the top-level README.md file when this is
// bumped.
var Version = semver.MustParse("0.3.0-dev")

// MinimalAPIVersion is the oldest daemon API version the bindings are
// known to work with.  It is compared against the API-Version header
// the daemon sends when a new connection is pinged.
var MinimalAPIVersion = semver.MustParse("1.24.0")
