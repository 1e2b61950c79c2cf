package db

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
)

// GetDBTX returns the underlying database transaction or connection interface
func (q *Queries) GetDBTX() DBTX {
	return q.db
}

// NewUpsertContractEventParams maps a decoded event onto its row. Addresses
// and hashes are stored lower-cased so lookups are case-insensitive.
func NewUpsertContractEventParams(contract common.Address, ev business.ContractEvent) UpsertContractEventParams {
	params := UpsertContractEventParams{
		ChainID:         ev.ChainID,
		ContractAddress: lowerHex(contract.Hex()),
		BlockNumber:     int64(ev.BlockNumber),
		TxHash:          lowerHex(ev.TxHash.Hex()),
		LogIndex:        int32(ev.LogIndex),
		EventName:       ev.Name,
	}
	if ev.EntityID != nil {
		params.EntityID = TextOf(ev.EntityID.Hex())
	}
	if ev.Actor != nil {
		params.Actor = TextOf(ev.Actor.Hex())
	}
	if ev.Counterpart != nil {
		params.Counterpart = TextOf(ev.Counterpart.Hex())
	}
	if ev.AmountWei != nil {
		params.AmountWei = pgtype.Numeric{Int: new(big.Int).Set(ev.AmountWei), Exp: 0, Valid: true}
	}
	if ev.Label != "" {
		params.Label = pgtype.Text{String: ev.Label, Valid: true}
	}
	return params
}

// ToBusiness converts a stored event row back into the domain type
func (e ContractEvent) ToBusiness() business.ContractEvent {
	out := business.ContractEvent{
		Name:        e.EventName,
		ChainID:     e.ChainID,
		BlockNumber: uint64(e.BlockNumber),
		TxHash:      common.HexToHash(e.TxHash),
		LogIndex:    uint(e.LogIndex),
		Label:       e.Label.String,
	}
	if e.EntityID.Valid {
		id := common.HexToHash(e.EntityID.String)
		out.EntityID = &id
	}
	if e.Actor.Valid {
		addr := common.HexToAddress(e.Actor.String)
		out.Actor = &addr
	}
	if e.Counterpart.Valid {
		addr := common.HexToAddress(e.Counterpart.String)
		out.Counterpart = &addr
	}
	if e.AmountWei.Valid && e.AmountWei.Int != nil {
		amount := new(big.Int).Set(e.AmountWei.Int)
		if e.AmountWei.Exp > 0 {
			amount.Mul(amount, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(e.AmountWei.Exp)), nil))
		}
		out.AmountWei = amount
	}
	if e.ObservedAt.Valid {
		out.ObservedAt = e.ObservedAt.Time
	}
	return out
}

// TextOf returns a valid lower-cased text value
func TextOf(s string) pgtype.Text {
	return pgtype.Text{String: lowerHex(s), Valid: true}
}

func lowerHex(s string) string {
	return strings.ToLower(s)
}
