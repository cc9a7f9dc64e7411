// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable stands in for build fields the linker did not set.
const notAvailable = "N/A"

// AppBuildInfo holds the version, date and commit injected with -ldflags.
// Empty fields mean a local build.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }

// String renders the banner printed by the binaries on start.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		orNotAvailable(a.version), orNotAvailable(a.date), orNotAvailable(a.commit))
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
