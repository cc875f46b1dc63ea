// Package stress drives many producers and consumers through one queue and
// verifies that every item sent is received exactly once.
//
// Each producer tags its items with its own index and a sequence number, so
// the receiving side can tell a duplicate, a lost item and a corrupted item
// apart. Receipts are tracked in a concurrent map shared by all consumers.
package stress
