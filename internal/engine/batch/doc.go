// Package batch splits a slice into fixed-size batches and runs a callback
// over them with bounded concurrency, reporting progress after each batch.
//
// The engine uses it to estimate many households in one request without
// spawning a goroutine per household.
package batch
