// Package memory provides the typed object pool backing order
// allocation in the matching hot path, so a steady stream of
// submissions does not translate into a steady stream of garbage.
package memory
