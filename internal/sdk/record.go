// Package sdk enumerates installed Xcode SDKs and picks the one a user asked for.
package sdk

// Record is one SDK variant as reported by `xcodebuild -showsdks -json`.
// Optional metadata is nil when xcodebuild leaves the key out or sets it to null.
type Record struct {
	CanonicalName   string // e.g. "macosx14.0"; identifies the SDK, never displayed
	DisplayName     string // e.g. "macOS 14.0"; matched against queries and listed
	IsBaseSDK       bool
	Platform        string
	PlatformPath    string
	PlatformVersion string
	SDKPath         string // the path every action operates on
	SDKVersion      string

	BuildID                   *string // dedup and sort key in query mode
	ProductBuildVersion       *string
	ProductCopyright          *string
	ProductName               *string
	ProductVersion            *string
	IOSSupportVersion         *string
	ProductUserVisibleVersion *string
}

// Display renders an optional field, using "" for an absent value.
func Display(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// equalOptional reports whether two optional strings are equal; two absent
// values are equal to each other.
func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// compareOptional orders absent values before present ones and present ones
// lexicographically.
func compareOptional(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}
