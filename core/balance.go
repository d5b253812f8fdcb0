package core

// BalanceSnapshot holds integer minor units: satoshis for bitcoin,
// micro-STX for stacks. For stacks, Confirmed maps to the available balance
// and Unconfirmed to the locked balance.
type BalanceSnapshot struct {
	Confirmed   int64 `json:"confirmed"`
	Unconfirmed int64 `json:"unconfirmed"`
	Total       int64 `json:"total"`
}

// DeriveTotal fills Total from the two summands when the vendor did not
// supply one. The summands are never assumed to already be net of each other.
func (s BalanceSnapshot) DeriveTotal() BalanceSnapshot {
	s.Total = s.Confirmed + s.Unconfirmed
	return s
}
