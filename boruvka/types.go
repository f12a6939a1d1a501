// SPDX-License-Identifier: MIT
package boruvka

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/parboruvka/comm"
	"github.com/katalvlaran/parboruvka/core"
	"github.com/katalvlaran/parboruvka/dsu"
	"github.com/katalvlaran/parboruvka/partition"
)

// Sentinel errors.
var (
	ErrInvalidGraph       = errors.New("boruvka: nil graph")
	ErrInvalidWorkerCount = errors.New("boruvka: worker count must be positive")
	ErrConfigMismatch     = errors.New("boruvka: workers disagree on configuration")
	ErrScatterMismatch    = errors.New("boruvka: received edge slice has wrong length")
	ErrTableSize          = errors.New("boruvka: candidate table has wrong length")
	ErrReplicaDivergence  = errors.New("boruvka: union-find replicas diverged")
	ErrDisconnected       = errors.New("boruvka: graph is disconnected")
	ErrUnknownStrategy    = errors.New("boruvka: unknown combine strategy")
	ErrUnknownTieBreak    = errors.New("boruvka: unknown tie-break rule")
)

// Strategy selects the CombineProtocol implementation.
type Strategy int

const (
	// StrategyFlat reduces every table at rank 0 and broadcasts the result.
	StrategyFlat Strategy = iota
	// StrategyTree reduces pairwise with doubling steps, then broadcasts.
	StrategyTree
)

func (s Strategy) String() string {
	switch s {
	case StrategyFlat:
		return "flat"
	case StrategyTree:
		return "tree"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "flat" or "tree" to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "flat":
		return StrategyFlat, nil
	case "tree":
		return StrategyTree, nil
	default:
		return 0, fmt.Errorf("ParseStrategy(%q): %w", s, ErrUnknownStrategy)
	}
}

// TieBreak decides between two candidates of equal weight.
type TieBreak int

const (
	// TieBreakIncumbent keeps the candidate already in the table.
	TieBreakIncumbent TieBreak = iota
	// TieBreakLowestID prefers the lower (min endpoint, max endpoint) pair.
	TieBreakLowestID
)

func (t TieBreak) String() string {
	switch t {
	case TieBreakIncumbent:
		return "incumbent"
	case TieBreakLowestID:
		return "lowest-id"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// ParseTieBreak maps "incumbent" or "lowest-id" to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "", "incumbent":
		return TieBreakIncumbent, nil
	case "lowest-id":
		return TieBreakLowestID, nil
	default:
		return 0, fmt.Errorf("ParseTieBreak(%q): %w", s, ErrUnknownTieBreak)
	}
}

// Termination is the reason the round loop stopped.
type Termination int

const (
	// Completed means V-1 edges were accepted: the result spans the graph.
	Completed Termination = iota
	// ExhaustedProgress means a round accepted no edge: the graph is disconnected.
	ExhaustedProgress
	// RoundCapReached means the loop hit the V-round safety cap.
	RoundCapReached
)

func (t Termination) String() string {
	switch t {
	case Completed:
		return "completed"
	case ExhaustedProgress:
		return "exhausted-progress"
	case RoundCapReached:
		return "round-cap-reached"
	default:
		return fmt.Sprintf("Termination(%d)", int(t))
	}
}

// State is a worker's position in the round controller state machine.
type State int

const (
	StateScattering State = iota
	StateRoundActive
	StateDone
)

func (s State) String() string {
	switch s {
	case StateScattering:
		return "scattering"
	case StateRoundActive:
		return "round-active"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// RoundStats describes one completed round. It is reported on rank 0 only.
type RoundStats struct {
	Round         int // 1-based
	Candidates    int // non-empty entries in the combined table
	Accepted      int // edges accepted this round
	TotalAccepted int // edges accepted so far
	Components    int // components after the round
}

// Result is what a worker knows once the round loop is done.
type Result struct {
	// Edges holds the accepted edges in acceptance order. Rank 0 only.
	Edges []core.Edge

	// TotalWeight is the sum of the accepted edge weights.
	TotalWeight int64

	// Accepted is the number of accepted edges (len(Edges) on rank 0).
	Accepted int

	// Rounds is the number of rounds executed.
	Rounds int

	// Reason tells why the round loop stopped.
	Reason Termination

	// Spanning is true when the result is a spanning tree rather than a forest.
	Spanning bool

	// Components is the number of components left in the replica.
	Components int

	Vertices int
	Workers  int
	Strategy Strategy

	// Digest fingerprints the final union-find replica.
	Digest dsu.Digest

	// Messages and Bytes are network totals; filled in by Run only.
	Messages int64
	Bytes    int64
}

// Options configures a run. Use DefaultOptions and Option functions.
type Options struct {
	// Workers is the pool size used by Run. RunWorker takes it from the Communicator.
	Workers int

	Strategy  Strategy
	TieBreak  TieBreak
	Partition partition.Policy

	// VerifyReplicas adds an all-gather of replica digests after every round.
	VerifyReplicas bool

	// RequireSpanning turns a spanning forest result into ErrDisconnected.
	RequireSpanning bool

	// Codec is the network codec used by Run; nil means gob.
	Codec comm.Codec

	// OnRound, when set, is called on rank 0 after every round.
	OnRound func(RoundStats)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a single-worker flat configuration with
// incumbent tie-breaking and remainder-last partitioning.
func DefaultOptions() Options {
	return Options{
		Workers:   1,
		Strategy:  StrategyFlat,
		TieBreak:  TieBreakIncumbent,
		Partition: partition.PolicyRemainderLast,
	}
}

// WithWorkers sets the pool size used by Run.
func WithWorkers(n int) Option { return func(o *Options) { o.Workers = n } }

// WithStrategy selects the combine protocol.
func WithStrategy(s Strategy) Option { return func(o *Options) { o.Strategy = s } }

// WithTieBreak selects the equal-weight rule.
func WithTieBreak(t TieBreak) Option { return func(o *Options) { o.TieBreak = t } }

// WithPartitionPolicy selects how edges are sliced across workers.
func WithPartitionPolicy(p partition.Policy) Option { return func(o *Options) { o.Partition = p } }

// WithReplicaCheck enables per-round replica digest verification.
func WithReplicaCheck() Option { return func(o *Options) { o.VerifyReplicas = true } }

// WithRequireSpanning makes a disconnected input an error.
func WithRequireSpanning() Option { return func(o *Options) { o.RequireSpanning = true } }

// WithCodec sets the network codec used by Run.
func WithCodec(c comm.Codec) Option { return func(o *Options) { o.Codec = c } }

// WithRoundHook registers a per-round callback on rank 0.
func WithRoundHook(fn func(RoundStats)) Option { return func(o *Options) { o.OnRound = fn } }

// WithOptions replaces the whole configuration; later options still apply.
func WithOptions(src Options) Option { return func(o *Options) { *o = src } }

func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o Options) validate() error {
	if o.Strategy != StrategyFlat && o.Strategy != StrategyTree {
		return fmt.Errorf("%s: %w", o.Strategy, ErrUnknownStrategy)
	}
	if o.TieBreak != TieBreakIncumbent && o.TieBreak != TieBreakLowestID {
		return fmt.Errorf("%s: %w", o.TieBreak, ErrUnknownTieBreak)
	}
	if _, err := partition.Plan(0, 1, o.Partition); err != nil {
		return err
	}

	return nil
}
