package core

type AddressPurpose string

const (
	PurposePayment  AddressPurpose = "payment"
	PurposeOrdinals AddressPurpose = "ordinals"
	PurposeStacks   AddressPurpose = "stacks"
)

type AddressBinding struct {
	Address   string         `json:"address"`
	Purpose   AddressPurpose `json:"purpose"`
	PublicKey string         `json:"public_key,omitempty"`
}

type AddressList []AddressBinding

// ForPurpose returns the first binding with the given purpose. Providers may
// hand back duplicate purposes; the first one wins, matching the order the
// vendor returned.
func (l AddressList) ForPurpose(purpose AddressPurpose) (AddressBinding, bool) {
	for _, b := range l {
		if b.Purpose == purpose {
			return b, true
		}
	}
	return AddressBinding{}, false
}
