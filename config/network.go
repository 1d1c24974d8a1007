package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chinmay1088/raydium-go/api"
)

const networkFile = "network.txt"

// ReadNetwork returns the persisted network, defaulting to mainnet when the
// file is missing, unreadable or invalid.
func ReadNetwork() string {
	dir, err := Dir()
	if err != nil {
		return api.NetworkMainnet
	}

	data, err := os.ReadFile(filepath.Join(dir, networkFile))
	if err != nil {
		return api.NetworkMainnet
	}

	network := strings.TrimSpace(string(data))
	if network != api.NetworkMainnet && network != api.NetworkDevnet {
		return api.NetworkMainnet
	}
	return network
}

// WriteNetwork persists the network selection.
func WriteNetwork(network string) error {
	if network != api.NetworkMainnet && network != api.NetworkDevnet {
		return fmt.Errorf("invalid network: %s. Use 'mainnet' or 'devnet'", network)
	}

	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, networkFile), []byte(network), 0600); err != nil {
		return fmt.Errorf("failed to write network file: %w", err)
	}
	return nil
}
