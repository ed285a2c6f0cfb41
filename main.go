package main

import (
	"xcode-sdk/cmd" // CLI commands and execution logic
)

// main delegates to cmd.Execute, which parses flags, enumerates the installed
// Xcode SDKs with `xcodebuild -showsdks -json`, and either lists them or
// resolves a fuzzy name to one SDK path.
//
// Error handling strategy:
//   - Every failure (xcodebuild missing, malformed JSON, no SDKs, clipboard
//     unavailable) is returned up the call chain and reported once in red on
//     stderr, and the process exits with status 1.
//   - Nothing is retried and nothing is persisted between runs.
func main() {
	cmd.Execute()
}
