// Package services contains stateless domain services. SettlementEngine is
// the only one: the pure penalty/split computation that turns an oracle
// report into escrow credits.
package services
