package params

// CreateGroupPaymentParams contains parameters for creating a group payment.
// TotalAmount is a decimal amount of the native currency.
type CreateGroupPaymentParams struct {
	Recipient       string
	NumParticipants uint64
	TotalAmount     string
	Remarks         string
}

// CreateSavingsPotParams contains parameters for creating a savings pot.
// InitialAmount may be empty or zero.
type CreateSavingsPotParams struct {
	Name          string
	TargetAmount  string
	InitialAmount string
	Remarks       string
}

const (
	DefaultActivityLimit int32 = 20
	MaxActivityLimit     int32 = 100
)

// NormalizeLimit applies the default page size and caps it
func NormalizeLimit(limit int32) int32 {
	if limit <= 0 {
		return DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		return MaxActivityLimit
	}
	return limit
}

// ListActivityParams contains parameters for listing indexed contract events
type ListActivityParams struct {
	Address string
	Limit   int32
	Offset  int32
}
