// Package kernel contains the shared value objects of the escrow domain:
// party identities (UUID) and token amounts (Amount).
//
// Both types are immutable and validated at construction; the zero value of
// either fails Validate, so aggregates and commands can rely on well-formed
// inputs once their constructors succeed.
package kernel
