// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo holds the build metadata injected with -ldflags.
type AppBuildInfo struct {
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}

// NewAppBuildInfo replaces empty values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		BuildVersion: orNA(version),
		BuildDate:    orNA(date),
		BuildCommit:  orNA(commit),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
