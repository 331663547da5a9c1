package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const rpcCallTimeout = 3 * time.Second

// rpcNodeChecker implements NodeHealthChecker against the CometBFT RPC
// endpoint of the local loom node.
type rpcNodeChecker struct {
	rpcAddr string
	client  *http.Client
}

func newRPCNodeChecker(rpcAddr string) *rpcNodeChecker {
	return &rpcNodeChecker{
		rpcAddr: rpcAddr,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// getJSON fetches an RPC path and decodes the response body into out.
// Pass a nil out to only check the status code.
func (c *rpcNodeChecker) getJSON(path string, out interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), rpcCallTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.rpcAddr+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("rpc unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rpc returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// CheckRPC verifies the RPC endpoint answers at all.
func (c *rpcNodeChecker) CheckRPC() error {
	return c.getJSON("/health", nil)
}

// CheckSync reports whether the node is catching up and its latest height.
func (c *rpcNodeChecker) CheckSync() (syncing bool, height int64, err error) {
	var status struct {
		Result struct {
			SyncInfo struct {
				CatchingUp        bool   `json:"catching_up"`
				LatestBlockHeight string `json:"latest_block_height"`
			} `json:"sync_info"`
		} `json:"result"`
	}

	if err := c.getJSON("/status", &status); err != nil {
		return false, 0, err
	}

	// CometBFT encodes heights as strings.
	blockHeight, err := strconv.ParseInt(status.Result.SyncInfo.LatestBlockHeight, 10, 64)
	if err != nil {
		return false, 0, fmt.Errorf("bad block height %q: %w", status.Result.SyncInfo.LatestBlockHeight, err)
	}

	return status.Result.SyncInfo.CatchingUp, blockHeight, nil
}

// CheckConsensus is a no-op for full nodes. Validators are expected to
// watch signing through the oracle feeder and external alerting instead.
func (c *rpcNodeChecker) CheckConsensus() error {
	return nil
}

// GetPeerCount returns the number of connected peers.
func (c *rpcNodeChecker) GetPeerCount() (int, error) {
	var netInfo struct {
		Result struct {
			NPeers string `json:"n_peers"`
		} `json:"result"`
	}

	if err := c.getJSON("/net_info", &netInfo); err != nil {
		return 0, err
	}

	peers, err := strconv.Atoi(netInfo.Result.NPeers)
	if err != nil {
		return 0, fmt.Errorf("bad peer count %q: %w", netInfo.Result.NPeers, err)
	}
	return peers, nil
}

// GetBlockHeight returns the latest block height the node has seen.
func (c *rpcNodeChecker) GetBlockHeight() (int64, error) {
	_, height, err := c.CheckSync()
	return height, err
}
