// Package service is the only write entry point into the engine. It
// serializes access to one book, records metrics and structured logs,
// and hands completed trades to consumers through a bounded outbox so
// no I/O ever happens inside the matching path.
package service
