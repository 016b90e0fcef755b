// Package order contains the shipment order aggregate and its lifecycle
// state machine (Placed -> Accepted -> Arrived -> Settled).
//
// The aggregate owns all role-gated transitions; repositories persist it and
// handlers orchestrate it, but only the methods in this package mutate it.
package order
