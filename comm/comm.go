// SPDX-License-Identifier: MIT
package comm

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a group size <= 0.
	ErrInvalidSize = errors.New("comm: group size must be positive")

	// ErrInvalidRank indicates a peer rank outside [0, size).
	ErrInvalidRank = errors.New("comm: rank out of range")

	// ErrProtocol indicates a frame arrived with an unexpected tag.
	ErrProtocol = errors.New("comm: protocol violation")

	// ErrAborted is reported by every blocked operation after Network.Abort.
	ErrAborted = errors.New("comm: network aborted")

	// ErrClosed is the abort cause recorded by Network.Close.
	ErrClosed = errors.New("comm: network closed")
)

// Tag labels a frame so the receiver can check it is reading the message the
// protocol expects next.
type Tag uint16

// Tags reserved by the collectives in this package. Callers should use tags
// at or above TagUser for their own point-to-point traffic.
const (
	tagBroadcast Tag = iota + 1
	tagReduce
	tagGather
	tagBarrier

	// TagUser is the first tag free for callers.
	TagUser Tag = 64
)

// Communicator is one rank's view of a fixed worker group.
type Communicator interface {
	// Rank returns this worker's id in [0, Size()).
	Rank() int

	// Size returns the number of workers in the group.
	Size() int

	// Codec returns the codec every rank in the group uses for values.
	Codec() Codec

	// Send delivers payload to rank to. It may block until the peer has room.
	Send(ctx context.Context, to int, tag Tag, payload []byte) error

	// Recv returns the next frame from rank from, which must carry tag.
	Recv(ctx context.Context, from int, tag Tag) ([]byte, error)
}

// SendValue encodes v with the communicator's codec and sends it.
func SendValue[T any](ctx context.Context, c Communicator, to int, tag Tag, v T) error {
	payload, err := c.Codec().Marshal(v)
	if err != nil {
		return fmt.Errorf("SendValue to %d: %w", to, err)
	}

	return c.Send(ctx, to, tag, payload)
}

// RecvValue receives one frame from rank from and decodes it as a T.
func RecvValue[T any](ctx context.Context, c Communicator, from int, tag Tag) (T, error) {
	var v T
	payload, err := c.Recv(ctx, from, tag)
	if err != nil {
		return v, err
	}
	if err := c.Codec().Unmarshal(payload, &v); err != nil {
		return v, fmt.Errorf("RecvValue from %d: %w", from, err)
	}

	return v, nil
}

func checkRank(c Communicator, r int) error {
	if r < 0 || r >= c.Size() {
		return fmt.Errorf("rank %d with size %d: %w", r, c.Size(), ErrInvalidRank)
	}

	return nil
}
