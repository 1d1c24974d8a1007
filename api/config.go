package api

import "time"

// network type constants
const (
	NetworkMainnet = "mainnet"
	NetworkDevnet  = "devnet"
)

// API hosts
const (
	MainnetAPIHost = "https://api-v3.raydium.io"
	DevnetAPIHost  = "https://api-v3-devnet.raydium.io"
)

// DefaultTimeout bounds connect and read time for the client created when
// no *http.Client is supplied.
const DefaultTimeout = 10 * time.Second

// Unknown is returned by the scalar endpoints when no value is available.
const Unknown = "Unknown"

// HostForNetwork returns the API host for a network name, falling back to
// mainnet for anything unrecognized.
func HostForNetwork(network string) string {
	if network == NetworkDevnet {
		return DevnetAPIHost
	}
	return MainnetAPIHost
}
