package contract

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/protectedpay/protectedpay-api/internal/constants"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
)

// ErrUnknownEvent is returned for logs that are not ProtectedPay events
var ErrUnknownEvent = errors.New("unknown contract event")

// eventFields names the decoded fields that populate a ContractEvent
type eventFields struct {
	id          string
	actor       string
	counterpart string
	amount      string
	label       string
}

var eventLayouts = map[string]eventFields{
	constants.EventTransferInitiated:       {id: "transferId", actor: "sender", counterpart: "recipient", amount: "amount"},
	constants.EventTransferClaimed:         {id: "transferId", actor: "recipient", amount: "amount"},
	constants.EventTransferRefunded:        {id: "transferId", actor: "sender", amount: "amount"},
	constants.EventUserRegistered:          {actor: "userAddress", label: "username"},
	constants.EventGroupPaymentCreated:     {id: "paymentId", actor: "creator", counterpart: "recipient", amount: "totalAmount"},
	constants.EventGroupPaymentContributed: {id: "paymentId", actor: "contributor", amount: "amount"},
	constants.EventGroupPaymentCompleted:   {id: "paymentId", actor: "recipient", amount: "amount"},
	constants.EventSavingsPotCreated:       {id: "potId", actor: "owner", amount: "targetAmount", label: "name"},
	constants.EventSavingsPotContribution:  {id: "potId", actor: "contributor", amount: "amount"},
	constants.EventSavingsPotBroken:        {id: "potId", actor: "owner", amount: "amount"},
}

// EventTopics returns the topic0 hashes of every event in the ABI, for log
// filtering
func (c *Codec) EventTopics() []common.Hash {
	topics := make([]common.Hash, 0, len(c.abi.Events))
	for name := range eventLayouts {
		if ev, ok := c.abi.Events[name]; ok {
			topics = append(topics, ev.ID)
		}
	}
	return topics
}

// DecodeEvent turns a raw log into a ContractEvent. ChainID and ObservedAt are
// left for the caller.
func (c *Codec) DecodeEvent(log types.Log) (*business.ContractEvent, error) {
	if len(log.Topics) == 0 {
		return nil, ErrUnknownEvent
	}

	ev, err := c.abi.EventByID(log.Topics[0])
	if err != nil {
		return nil, fmt.Errorf("%w: topic %s", ErrUnknownEvent, log.Topics[0].Hex())
	}
	layout, ok := eventLayouts[ev.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, ev.Name)
	}

	values := make(map[string]interface{})
	if err := ev.Inputs.UnpackIntoMap(values, log.Data); err != nil {
		return nil, fmt.Errorf("failed to unpack %s data: %w", ev.Name, err)
	}

	var indexed abi.Arguments
	for _, arg := range ev.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	if err := abi.ParseTopicsIntoMap(values, indexed, log.Topics[1:]); err != nil {
		return nil, fmt.Errorf("failed to parse %s topics: %w", ev.Name, err)
	}

	decoded := &business.ContractEvent{
		Name:        ev.Name,
		BlockNumber: log.BlockNumber,
		TxHash:      log.TxHash,
		LogIndex:    log.Index,
	}
	if layout.id != "" {
		if id, ok := values[layout.id].([32]byte); ok {
			h := common.Hash(id)
			decoded.EntityID = &h
		}
	}
	decoded.Actor = addressField(values, layout.actor)
	decoded.Counterpart = addressField(values, layout.counterpart)
	if layout.amount != "" {
		if amount, ok := values[layout.amount].(*big.Int); ok {
			decoded.AmountWei = amount
		}
	}
	if layout.label != "" {
		decoded.Label, _ = values[layout.label].(string)
	}

	return decoded, nil
}

func addressField(values map[string]interface{}, name string) *common.Address {
	if name == "" {
		return nil
	}
	addr, ok := values[name].(common.Address)
	if !ok {
		return nil
	}
	return &addr
}
