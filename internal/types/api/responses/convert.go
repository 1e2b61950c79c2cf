package responses

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/helpers"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
)

func hashOrEmpty(h common.Hash) string {
	if h == (common.Hash{}) {
		return ""
	}
	return h.Hex()
}

func weiString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

// FromTxReceipt renders a confirmed contract write
func FromTxReceipt(r *business.TxReceipt) TxReceiptResponse {
	resp := TxReceiptResponse{
		Object:      "transaction",
		Operation:   r.Operation,
		TxHash:      r.TxHash.Hex(),
		BlockNumber: r.BlockNumber,
		GasUsed:     r.GasUsed,
		From:        r.From.Hex(),
		Value:       helpers.FormatAmount(r.ValueWei),
		ValueWei:    weiString(r.ValueWei),
		ExplorerURL: r.ExplorerURL,
	}
	if r.EntityID != nil {
		resp.EntityID = r.EntityID.Hex()
	}
	return resp
}

func FromTransfer(t business.Transfer) TransferResponse {
	return TransferResponse{
		ID:        hashOrEmpty(t.ID),
		Object:    "transfer",
		Sender:    t.Sender.Hex(),
		Recipient: t.Recipient.Hex(),
		Amount:    helpers.FormatAmount(t.AmountWei),
		AmountWei: weiString(t.AmountWei),
		Timestamp: t.Timestamp.Unix(),
		Status:    t.Status.String(),
		Remarks:   t.Remarks,
	}
}

func FromTransfers(transfers []business.Transfer) []TransferResponse {
	out := make([]TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, FromTransfer(t))
	}
	return out
}

func FromProfile(p *business.ProfileOverview) ProfileResponse {
	return ProfileResponse{
		Object:    "profile",
		Address:   p.Address.Hex(),
		Username:  p.Username,
		Balance:   helpers.FormatAmount(p.BalanceWei),
		Transfers: FromTransfers(p.Transfers),
	}
}

func FromGroupPayment(g business.GroupPayment) GroupPaymentResponse {
	return GroupPaymentResponse{
		ID:              g.ID.Hex(),
		Object:          "group_payment",
		Creator:         g.Creator.Hex(),
		Recipient:       g.Recipient.Hex(),
		TotalAmount:     helpers.FormatAmount(g.TotalAmountWei),
		AmountPerPerson: helpers.FormatAmount(g.AmountPerPersonWei),
		AmountCollected: helpers.FormatAmount(g.AmountCollectedWei),
		Remaining:       helpers.FormatAmount(g.RemainingWei()),
		NumParticipants: g.NumParticipants,
		Timestamp:       g.Timestamp.Unix(),
		Status:          g.Status.String(),
		Remarks:         g.Remarks,
	}
}

func FromGroupPayments(payments []business.GroupPayment) []GroupPaymentResponse {
	out := make([]GroupPaymentResponse, 0, len(payments))
	for _, g := range payments {
		out = append(out, FromGroupPayment(g))
	}
	return out
}

func FromSavingsPot(p business.SavingsPot) SavingsPotResponse {
	return SavingsPotResponse{
		ID:            p.ID.Hex(),
		Object:        "savings_pot",
		Owner:         p.Owner.Hex(),
		Name:          p.Name,
		TargetAmount:  helpers.FormatAmount(p.TargetAmountWei),
		CurrentAmount: helpers.FormatAmount(p.CurrentAmountWei),
		TargetReached: p.TargetReached(),
		Timestamp:     p.Timestamp.Unix(),
		Status:        p.Status.String(),
		Remarks:       p.Remarks,
	}
}

func FromChain(c business.Chain) ChainResponse {
	resp := ChainResponse{
		Object:           "chain",
		HexChainID:       c.HexID(),
		Name:             c.Name,
		Symbol:           c.Symbol,
		RPCURL:           c.RPCURL,
		BlockExplorerURL: c.BlockExplorerURL,
		IsTestnet:        c.Testnet,
	}
	if c.ID != nil {
		resp.ChainID = c.ID.String()
	}
	return resp
}

// FromWalletStatus only reports a balance while connected
func FromWalletStatus(s *business.WalletStatus) WalletStatusResponse {
	resp := WalletStatusResponse{
		Object:      "wallet",
		IsConnected: s.IsConnected,
	}
	if s.Address != nil {
		resp.Address = s.Address.Hex()
	}
	if s.IsConnected {
		resp.Balance = helpers.FormatAmount(s.BalanceWei)
	}
	if s.ChainID != nil {
		resp.ChainID = s.ChainID.String()
	}
	if s.Chain != nil {
		chain := FromChain(*s.Chain)
		resp.Chain = &chain
	}
	return resp
}

func FromContractEvent(ev business.ContractEvent) ContractEventResponse {
	resp := ContractEventResponse{
		Object:      "contract_event",
		Event:       ev.Name,
		ChainID:     ev.ChainID,
		BlockNumber: ev.BlockNumber,
		TxHash:      ev.TxHash.Hex(),
		LogIndex:    ev.LogIndex,
		Label:       ev.Label,
		ObservedAt:  ev.ObservedAt.Unix(),
	}
	if ev.EntityID != nil {
		resp.EntityID = ev.EntityID.Hex()
	}
	if ev.Actor != nil {
		resp.Actor = ev.Actor.Hex()
	}
	if ev.Counterpart != nil {
		resp.Counterpart = ev.Counterpart.Hex()
	}
	if ev.AmountWei != nil {
		resp.Amount = helpers.FormatAmount(ev.AmountWei)
	}
	return resp
}

func FromContractEvents(events []business.ContractEvent) []ContractEventResponse {
	out := make([]ContractEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, FromContractEvent(ev))
	}
	return out
}

func FromSavingsPots(pots []business.SavingsPot) []SavingsPotResponse {
	out := make([]SavingsPotResponse, 0, len(pots))
	for _, p := range pots {
		out = append(out, FromSavingsPot(p))
	}
	return out
}
