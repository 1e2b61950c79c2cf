package constants

// Common string constants used throughout the codebase
const (
	ServiceName = "protectedpay-api"

	// Environments
	ProdEnvironment  = "prod"
	DevEnvironment   = "dev"
	TestEnvironment  = "test"
	LocalEnvironment = "local"

	// Log levels
	ErrorLevel = "error"
)

// Environment variables read outside of the config package
const (
	EnvLogLevel  = "LOG_LEVEL"
	EnvStage     = "STAGE"
	EnvGinMode   = "GIN_MODE"
	EnvConfigDir = "PPAY_CONFIG_DIR"
)

// Token precision of every supported chain's native currency
const NativeDecimals = 18

// Transfer identifiers and addresses as hex strings, including the 0x prefix
const (
	TransferIDHexLength = 66
	AddressHexLength    = 42
)

// Usernames accepted by the client before handing them to the contract
const (
	UsernameMinLength = 3
	UsernameMaxLength = 32
)

// Group payments need the creator plus at least one other participant
const MinGroupParticipants = 2
