package config

// DefaultSDKCommand is the shell command that lists installed SDKs as JSON.
const DefaultSDKCommand = "xcodebuild -showsdks -json"

// Config holds the optional user settings read from config.yaml.
// - SDKCommand: shell command run through `sh -c` to enumerate SDKs.
// - Frameworks: default for the --frameworks flag when it is not passed.
type Config struct {
	SDKCommand string `yaml:"sdk_command"`
	Frameworks bool   `yaml:"frameworks"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{SDKCommand: DefaultSDKCommand}
}
