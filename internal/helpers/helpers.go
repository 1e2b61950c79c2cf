package helpers

import "github.com/protectedpay/protectedpay-api/internal/constants"

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case constants.ProdEnvironment, constants.DevEnvironment, constants.LocalEnvironment, constants.TestEnvironment:
		return true
	default:
		return false
	}
}
