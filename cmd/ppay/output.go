package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/protectedpay/protectedpay-api/internal/types/api/responses"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/pterm/pterm"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// printer renders command results as pterm tables or as the same JSON the
// HTTP API returns
type printer struct {
	json bool
	w    io.Writer
}

func newPrinter(format string, w io.Writer) (*printer, error) {
	switch format {
	case formatTable, "":
		return &printer{w: w}, nil
	case formatJSON:
		return &printer{json: true, w: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func (p *printer) writeJSON(v interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) table(rows [][]string) error {
	if len(rows) <= 1 {
		pterm.Info.Println("No results")
		return nil
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func (p *printer) fields(title string, rows [][]string) error {
	pterm.DefaultSection.Println(title)
	return pterm.DefaultTable.WithData(rows).Render()
}

// wait shows a spinner while a write is confirmed
func (p *printer) wait(message string, fn func() (*business.TxReceipt, error)) (*business.TxReceipt, error) {
	if p.json {
		return fn()
	}
	spinner, _ := pterm.DefaultSpinner.Start(message)
	receipt, err := fn()
	if spinner != nil {
		if err != nil {
			spinner.Fail(message)
		} else {
			spinner.Success(message)
		}
	}
	return receipt, err
}

func (p *printer) receipt(r *business.TxReceipt) error {
	if p.json {
		return p.writeJSON(responses.FromTxReceipt(r))
	}
	return p.fields("Transaction confirmed", receiptRows(r))
}

func (p *printer) transfers(transfers []business.Transfer) error {
	if p.json {
		return p.writeJSON(responses.FromTransfers(transfers))
	}
	return p.table(transferRows(transfers))
}

func (p *printer) groupPayments(title string, payments []business.GroupPayment) error {
	if p.json {
		return p.writeJSON(responses.FromGroupPayments(payments))
	}
	pterm.DefaultSection.Println(title)
	return p.table(groupPaymentRows(payments))
}

func (p *printer) savingsPots(pots []business.SavingsPot) error {
	if p.json {
		return p.writeJSON(responses.FromSavingsPots(pots))
	}
	return p.table(savingsPotRows(pots))
}

func (p *printer) chains(chains []business.Chain) error {
	if p.json {
		out := make([]responses.ChainResponse, 0, len(chains))
		for _, c := range chains {
			out = append(out, responses.FromChain(c))
		}
		return p.writeJSON(out)
	}
	rows := [][]string{{"ID", "HEX", "NAME", "SYMBOL", "RPC URL", "EXPLORER"}}
	for _, c := range chains {
		rows = append(rows, []string{c.ID.String(), c.HexID(), c.Name, c.Symbol, c.RPCURL, c.BlockExplorerURL})
	}
	return p.table(rows)
}

func (p *printer) events(events []business.ContractEvent) error {
	if p.json {
		return p.writeJSON(responses.FromContractEvents(events))
	}
	return p.table(eventRows(events))
}

func receiptRows(r *business.TxReceipt) [][]string {
	v := responses.FromTxReceipt(r)
	rows := [][]string{
		{"Operation", v.Operation},
		{"Tx hash", v.TxHash},
		{"Block", strconv.FormatUint(v.BlockNumber, 10)},
		{"Gas used", strconv.FormatUint(v.GasUsed, 10)},
		{"From", v.From},
		{"Value", v.Value},
	}
	if v.EntityID != "" {
		rows = append(rows, []string{"Entity id", v.EntityID})
	}
	if v.ExplorerURL != "" {
		rows = append(rows, []string{"Explorer", v.ExplorerURL})
	}
	return rows
}

func transferRows(transfers []business.Transfer) [][]string {
	rows := [][]string{{"ID", "SENDER", "RECIPIENT", "AMOUNT", "STATUS", "SENT", "REMARKS"}}
	for _, t := range transfers {
		v := responses.FromTransfer(t)
		id := v.ID
		if id == "" {
			id = "-"
		}
		rows = append(rows, []string{id, v.Sender, v.Recipient, v.Amount, v.Status, formatTime(t.Timestamp), v.Remarks})
	}
	return rows
}

func groupPaymentRows(payments []business.GroupPayment) [][]string {
	rows := [][]string{{"ID", "RECIPIENT", "TOTAL", "PER PERSON", "COLLECTED", "PARTICIPANTS", "STATUS"}}
	for _, g := range payments {
		v := responses.FromGroupPayment(g)
		rows = append(rows, []string{
			v.ID, v.Recipient, v.TotalAmount, v.AmountPerPerson, v.AmountCollected,
			strconv.FormatUint(v.NumParticipants, 10), v.Status,
		})
	}
	return rows
}

func savingsPotRows(pots []business.SavingsPot) [][]string {
	rows := [][]string{{"ID", "NAME", "CURRENT", "TARGET", "REACHED", "STATUS"}}
	for _, pot := range pots {
		v := responses.FromSavingsPot(pot)
		rows = append(rows, []string{v.ID, v.Name, v.CurrentAmount, v.TargetAmount, strconv.FormatBool(v.TargetReached), v.Status})
	}
	return rows
}

func eventRows(events []business.ContractEvent) [][]string {
	rows := [][]string{{"BLOCK", "EVENT", "ENTITY", "ACTOR", "COUNTERPART", "AMOUNT", "LABEL"}}
	for _, ev := range events {
		v := responses.FromContractEvent(ev)
		rows = append(rows, []string{
			strconv.FormatUint(v.BlockNumber, 10), v.Event, dashIfEmpty(v.EntityID),
			dashIfEmpty(v.Actor), dashIfEmpty(v.Counterpart), dashIfEmpty(v.Amount), v.Label,
		})
	}
	return rows
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
