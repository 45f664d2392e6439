// Package pool
// Author: momentics <momentics@gmail.com>
//
// Pooled-memory subsystem for seqkit containers.
// Implements fixed-block pools with free-list recycling and burst growth,
// and growable object pools with constructor/destructor hooks and a
// retention cap bounding idle growth under churn.
// All pools are internally mutex-guarded; counters are atomic so Stats
// snapshots never take the pool lock.
// See blockpool.go and objpool.go for implementation details.
package pool
