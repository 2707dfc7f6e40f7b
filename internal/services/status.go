package services

import (
	"context"
	"log"
	"time"
)

// ConnectionStatus is the tri-state reachability indicator for the remote
// store. It starts at testing and flips between connected and offline on
// subsequent probes; there are no other states.
type ConnectionStatus string

const (
	StatusTesting   ConnectionStatus = "testing"
	StatusConnected ConnectionStatus = "connected"
	StatusOffline   ConnectionStatus = "offline"
)

// DefaultProbeTimeout bounds the connectivity probe. List, Save and Delete
// carry no fixed deadline of their own beyond the caller's context.
const DefaultProbeTimeout = 10 * time.Second

// TestConnection runs a bounded lightweight read against the remote store
// and updates the connection status. The status only gates UI affordances;
// the gateway never blocks List, Save or Delete on it.
func (gateway *Gateway) TestConnection(ctx context.Context) ConnectionStatus {
	probeCtx, cancel := context.WithTimeout(ctx, gateway.probeTimeout)
	defer cancel()

	status := StatusConnected
	if err := gateway.remote.Probe(probeCtx); err != nil {
		log.Printf("remote store probe failed: %v", err)
		status = StatusOffline
	}

	gateway.mu.Lock()
	gateway.status = status
	gateway.mu.Unlock()
	return status
}

// Status returns the result of the most recent probe, or testing if no
// probe has completed yet.
func (gateway *Gateway) Status() ConnectionStatus {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	return gateway.status
}
