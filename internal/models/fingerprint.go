package models

import "fmt"

// Fingerprint is the compact signature recorded after a clean load. The
// timestamp only keeps successive signatures distinguishable; nothing parses
// it back out.
type Fingerprint struct {
	AccountCount  int   `json:"account_count"`
	CustomerCount int   `json:"customer_count"`
	GeneratedAt   int64 `json:"generated_at"`
}

func (f Fingerprint) Encode() string {
	return fmt.Sprintf("%d:%d:%d", f.AccountCount, f.CustomerCount, f.GeneratedAt)
}

// Signals are the four booleans the generator derives from the host data.
// At least one must hold for a fingerprint to exist.
type Signals struct {
	AccountCount    int  `json:"account_count"`
	CustomerCount   int  `json:"customer_count"`
	HasOwner        bool `json:"has_owner"`
	HasTransactions bool `json:"has_transactions"`
}

// Any reports whether any protection-worthy signal is set.
func (s Signals) Any() bool {
	return s.AccountCount > 1 ||
		s.HasOwner ||
		s.CustomerCount > DefaultCustomerSeed ||
		s.HasTransactions
}
