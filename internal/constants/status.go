package constants

// Transfer statuses as stored by the contract (uint8 enum order)
const (
	TransferStatusPending  uint8 = 0
	TransferStatusClaimed  uint8 = 1
	TransferStatusRefunded uint8 = 2
)

// Group payment statuses
const (
	GroupPaymentStatusPending   uint8 = 0
	GroupPaymentStatusCompleted uint8 = 1
	GroupPaymentStatusCancelled uint8 = 2
)

// Savings pot statuses
const (
	SavingsPotStatusActive uint8 = 0
	SavingsPotStatusBroken uint8 = 1
)

// Contract event names
const (
	EventTransferInitiated       = "TransferInitiated"
	EventTransferClaimed         = "TransferClaimed"
	EventTransferRefunded        = "TransferRefunded"
	EventUserRegistered          = "UserRegistered"
	EventGroupPaymentCreated     = "GroupPaymentCreated"
	EventGroupPaymentContributed = "GroupPaymentContributed"
	EventGroupPaymentCompleted   = "GroupPaymentCompleted"
	EventSavingsPotCreated       = "SavingsPotCreated"
	EventSavingsPotContribution  = "SavingsPotContribution"
	EventSavingsPotBroken        = "SavingsPotBroken"
)
