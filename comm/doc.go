// SPDX-License-Identifier: MIT

// Package comm is the message-passing layer the distributed Borůvka workers
// use to talk to each other.
//
// A Communicator is one rank's handle on a fixed-size group of workers. It
// offers point-to-point Send/Recv of tagged byte frames plus a Codec used to
// turn values into frames. Everything else (Broadcast, Reduce, Allreduce,
// Allgather, Barrier) is built on top of Send/Recv as generic collectives, so
// any transport that can move ordered bytes between ranks (goroutines, OS
// processes, sockets) can run the algorithm unchanged.
//
// Network is the in-process transport: one buffered FIFO mailbox per ordered
// (from, to) pair, which preserves per-pair message order the same way MPI
// point-to-point messages are non-overtaking. Frames are always copied, so a
// receiver only ever sees an immutable snapshot of what the sender encoded.
//
// Failure model: every blocking call honours its context and the network's
// abort channel. Network.Abort wakes every blocked rank at once, which is how
// a single failing worker takes the whole group down with it.
//
// Collective ordering: Reduce folds contributions in ascending rank order, so
// an operator that keeps its left argument on ties makes the lowest rank win.
package comm
