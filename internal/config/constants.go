package config

import "time"

// app constants
const (
	AppName        = "lodestone"
	AppDescription = "terminal viewer for Minecraft instance logs"
	Version        = "0.2.0"

	ConfigFile = "lodestone.yaml"
)

// logging constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// store constants
const (
	// DefaultStoreCapacity bounds the number of parsed lines retained per session
	DefaultStoreCapacity = 10000
)

// backend constants
const (
	SocketDir    = "/tmp"
	SocketPrefix = "launcher-"
	SocketSuffix = ".sock"

	SocketDialTimeout  = 2 * time.Second
	DefaultEventBuffer = 1024
)

// tail constants
const (
	DefaultTailDebounce = 150 * time.Millisecond

	DefaultInstancesFile = "instances.yaml"
)

// tail discovery patterns
var (
	DefaultTailInclude = []string{"logs/*.log", "crash-reports/*.txt"}
	DefaultTailIgnore  = []string{"**/*.gz", "**/*.zip"}
)
