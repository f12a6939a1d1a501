// SPDX-License-Identifier: MIT
package comm

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/golang/glog"
)

// Base verbosity for network traces; high enough that engine logs stay readable.
const vlevel = 3

const defaultMailboxDepth = 4

// frame is one message on the wire.
type frame struct {
	tag     Tag
	payload []byte
}

// Stats is network telemetry.
type Stats struct {
	Messages int64 // frames delivered to a mailbox
	Bytes    int64 // payload bytes delivered
}

// Network is an in-process transport connecting size endpoints.
type Network struct {
	size  int
	codec Codec
	depth int

	// boxes[from][to] is the FIFO mailbox carrying frames from -> to.
	boxes [][]chan frame

	done      chan struct{} // closed on Abort
	abortOnce sync.Once
	mu        sync.Mutex
	cause     error // first Abort cause, guarded by mu

	messages atomic.Int64
	bytes    atomic.Int64
}

// NetworkOption configures a Network before creation.
type NetworkOption func(*Network)

// WithCodec sets the codec handed to every endpoint. A nil codec is ignored.
func WithCodec(c Codec) NetworkOption {
	return func(n *Network) {
		if c != nil {
			n.codec = c
		}
	}
}

// WithMailboxDepth sets how many frames a mailbox buffers before Send blocks.
// Values below one are ignored.
func WithMailboxDepth(depth int) NetworkOption {
	return func(n *Network) {
		if depth >= 1 {
			n.depth = depth
		}
	}
}

// NewNetwork creates a network of size endpoints.
// Complexity: O(size²) mailboxes.
func NewNetwork(size int, opts ...NetworkOption) (*Network, error) {
	if size <= 0 {
		return nil, fmt.Errorf("NewNetwork(%d): %w", size, ErrInvalidSize)
	}
	n := &Network{
		size:  size,
		codec: GobCodec{},
		depth: defaultMailboxDepth,
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.boxes = make([][]chan frame, size)
	for from := range n.boxes {
		n.boxes[from] = make([]chan frame, size)
		for to := range n.boxes[from] {
			n.boxes[from][to] = make(chan frame, n.depth)
		}
	}

	return n, nil
}

// Size returns the number of endpoints.
func (n *Network) Size() int { return n.size }

// Endpoint returns the Communicator for rank.
func (n *Network) Endpoint(rank int) (Communicator, error) {
	if rank < 0 || rank >= n.size {
		return nil, fmt.Errorf("Endpoint(%d) with size %d: %w", rank, n.size, ErrInvalidRank)
	}

	return &endpoint{net: n, rank: rank}, nil
}

// Endpoints returns the Communicators for every rank, indexed by rank.
func (n *Network) Endpoints() []Communicator {
	eps := make([]Communicator, n.size)
	for r := range eps {
		eps[r] = &endpoint{net: n, rank: r}
	}

	return eps
}

// Abort wakes every blocked operation; they return an error wrapping
// ErrAborted and cause. Only the first cause is kept.
func (n *Network) Abort(cause error) {
	n.abortOnce.Do(func() {
		n.mu.Lock()
		n.cause = cause
		n.mu.Unlock()
		glog.V(vlevel).Infof("comm: network aborted: %v", cause)
		close(n.done)
	})
}

// Close aborts the network with ErrClosed. Safe to call more than once.
func (n *Network) Close() { n.Abort(ErrClosed) }

// Stats returns a snapshot of the network counters.
func (n *Network) Stats() Stats {
	return Stats{Messages: n.messages.Load(), Bytes: n.bytes.Load()}
}

func (n *Network) abortErr() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	return fmt.Errorf("%w: %w", ErrAborted, n.cause)
}

// endpoint is one rank's handle on a Network.
type endpoint struct {
	net  *Network
	rank int
}

func (e *endpoint) Rank() int    { return e.rank }
func (e *endpoint) Size() int    { return e.net.size }
func (e *endpoint) Codec() Codec { return e.net.codec }

func (e *endpoint) Send(ctx context.Context, to int, tag Tag, payload []byte) error {
	if err := checkRank(e, to); err != nil {
		return fmt.Errorf("Send: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	// Copy so the receiver owns an immutable snapshot.
	f := frame{tag: tag, payload: append([]byte(nil), payload...)}

	select {
	case e.net.boxes[e.rank][to] <- f:
		e.net.messages.Add(1)
		e.net.bytes.Add(int64(len(f.payload)))
		glog.V(vlevel).Infof("comm: %d -> %d tag=%d bytes=%d", e.rank, to, tag, len(f.payload))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-e.net.done:
		return e.net.abortErr()
	}
}

func (e *endpoint) Recv(ctx context.Context, from int, tag Tag) ([]byte, error) {
	if err := checkRank(e, from); err != nil {
		return nil, fmt.Errorf("Recv: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	select {
	case f := <-e.net.boxes[from][e.rank]:
		if f.tag != tag {
			return nil, fmt.Errorf("Recv from %d: want tag %d, got %d: %w", from, tag, f.tag, ErrProtocol)
		}
		return f.payload, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-e.net.done:
		return nil, e.net.abortErr()
	}
}
