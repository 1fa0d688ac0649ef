package models

// Defaults applied when detection or form input leaves a field empty.
const (
	DefaultPort      = 3000
	DefaultCommand   = "npm run dev"
	DefaultURLSuffix = "test"
	DefaultScanDepth = 2
)

// Port bounds accepted by validation. Below 1024 is the privileged range.
const (
	MinPort = 1024
	MaxPort = 65535
)
