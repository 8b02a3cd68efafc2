package config

var (
	Network   string
	Node      string
	Verbosity int

	JSONOutput bool

	NetworkConfig string
)
