// Package escrow contains the per-party withdrawable balance aggregate.
//
// Settlement credits balances; withdrawal zeroes them. The pull-payment
// discipline lives here: settlement never pushes tokens to a party directly,
// it only credits an Account, and the party withdraws in a separate call.
package escrow
