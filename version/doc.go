// Package version reports build information for querykit binaries.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/querykit/version.Version=1.0.0" ./cmd/querydemo
package version
