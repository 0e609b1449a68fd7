package config

// Package-level command configuration, bound to cobra flags at startup.
var (
	Target    string
	Value     float64 // attached ETH
	Signature string
	Calldata  string

	JSONOutput bool
	Verbose    bool
)
