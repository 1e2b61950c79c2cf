package contract

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
)

// Codec packs calls to and unpacks results from the ProtectedPay contract
type Codec struct {
	abi abi.ABI
}

// NewCodec creates a codec over the embedded ABI
func NewCodec() (*Codec, error) {
	parsed, err := ABI()
	if err != nil {
		return nil, err
	}
	return &Codec{abi: parsed}, nil
}

// Pack encodes a method call
func (c *Codec) Pack(method string, args ...interface{}) ([]byte, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}
	return data, nil
}

// IsPayable reports whether the method accepts native value
func (c *Codec) IsPayable(method string) bool {
	m, ok := c.abi.Methods[method]
	return ok && m.IsPayable()
}

// rawTransfer matches the Transfer tuple returned by the contract
type rawTransfer struct {
	Sender    common.Address
	Recipient common.Address
	Amount    *big.Int
	Timestamp *big.Int
	Status    uint8
	Remarks   string
}

func (r rawTransfer) toBusiness(id common.Hash) business.Transfer {
	return business.Transfer{
		ID:        id,
		Sender:    r.Sender,
		Recipient: r.Recipient,
		AmountWei: r.Amount,
		Timestamp: unixTime(r.Timestamp),
		Status:    business.TransferStatus(r.Status),
		Remarks:   r.Remarks,
	}
}

type rawUserProfile struct {
	Username                  string
	TransferIds               [][32]byte
	GroupPaymentIds           [][32]byte
	ParticipatedGroupPayments [][32]byte
	SavingsPotIds             [][32]byte
}

type rawGroupPayment struct {
	Creator         common.Address
	Recipient       common.Address
	TotalAmount     *big.Int
	AmountPerPerson *big.Int
	NumParticipants *big.Int
	AmountCollected *big.Int
	Timestamp       *big.Int
	Status          uint8
	Remarks         string
}

type rawSavingsPot struct {
	Owner         common.Address
	Name          string
	TargetAmount  *big.Int
	CurrentAmount *big.Int
	Timestamp     *big.Int
	Status        uint8
	Remarks       string
}

// UnpackTransfer decodes getTransferDetails output
func (c *Codec) UnpackTransfer(id common.Hash, data []byte) (*business.Transfer, error) {
	out, err := c.abi.Unpack(MethodGetTransferDetails, data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", MethodGetTransferDetails, err)
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("failed to unpack %s: unexpected output count %d", MethodGetTransferDetails, len(out))
	}
	raw := *abi.ConvertType(out[0], new(rawTransfer)).(*rawTransfer)
	transfer := raw.toBusiness(id)
	return &transfer, nil
}

// UnpackTransfers decodes getUserTransfers output. The contract does not return
// ids with the list, so the returned transfers carry a zero ID.
func (c *Codec) UnpackTransfers(data []byte) ([]business.Transfer, error) {
	out, err := c.abi.Unpack(MethodGetUserTransfers, data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", MethodGetUserTransfers, err)
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("failed to unpack %s: unexpected output count %d", MethodGetUserTransfers, len(out))
	}
	raws := *abi.ConvertType(out[0], new([]rawTransfer)).(*[]rawTransfer)

	transfers := make([]business.Transfer, 0, len(raws))
	for _, raw := range raws {
		transfers = append(transfers, raw.toBusiness(common.Hash{}))
	}
	return transfers, nil
}

// UnpackUsername decodes getUserByAddress output; an empty string means the
// address has no username
func (c *Codec) UnpackUsername(data []byte) (string, error) {
	out, err := c.abi.Unpack(MethodGetUserByAddress, data)
	if err != nil {
		return "", fmt.Errorf("failed to unpack %s: %w", MethodGetUserByAddress, err)
	}
	if len(out) != 1 {
		return "", fmt.Errorf("failed to unpack %s: unexpected output count %d", MethodGetUserByAddress, len(out))
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

// UnpackAddress decodes getUserByUsername output; the zero address means the
// username is not registered
func (c *Codec) UnpackAddress(data []byte) (common.Address, error) {
	out, err := c.abi.Unpack(MethodGetUserByUsername, data)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to unpack %s: %w", MethodGetUserByUsername, err)
	}
	if len(out) != 1 {
		return common.Address{}, fmt.Errorf("failed to unpack %s: unexpected output count %d", MethodGetUserByUsername, len(out))
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// UnpackUserProfile decodes getUserProfile output
func (c *Codec) UnpackUserProfile(address common.Address, data []byte) (*business.UserProfile, error) {
	var raw rawUserProfile
	if err := c.abi.UnpackIntoInterface(&raw, MethodGetUserProfile, data); err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", MethodGetUserProfile, err)
	}
	return &business.UserProfile{
		Address:                   address,
		Username:                  raw.Username,
		TransferIDs:               toHashes(raw.TransferIds),
		GroupPaymentIDs:           toHashes(raw.GroupPaymentIds),
		ParticipatedGroupPayments: toHashes(raw.ParticipatedGroupPayments),
		SavingsPotIDs:             toHashes(raw.SavingsPotIds),
	}, nil
}

// UnpackGroupPayment decodes getGroupPaymentDetails output
func (c *Codec) UnpackGroupPayment(id common.Hash, data []byte) (*business.GroupPayment, error) {
	var raw rawGroupPayment
	if err := c.abi.UnpackIntoInterface(&raw, MethodGetGroupPaymentDetails, data); err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", MethodGetGroupPaymentDetails, err)
	}

	var participants uint64
	if raw.NumParticipants != nil && raw.NumParticipants.IsUint64() {
		participants = raw.NumParticipants.Uint64()
	}

	return &business.GroupPayment{
		ID:                 id,
		Creator:            raw.Creator,
		Recipient:          raw.Recipient,
		TotalAmountWei:     raw.TotalAmount,
		AmountPerPersonWei: raw.AmountPerPerson,
		NumParticipants:    participants,
		AmountCollectedWei: raw.AmountCollected,
		Timestamp:          unixTime(raw.Timestamp),
		Status:             business.GroupPaymentStatus(raw.Status),
		Remarks:            raw.Remarks,
	}, nil
}

// UnpackSavingsPot decodes getSavingsPotDetails output
func (c *Codec) UnpackSavingsPot(id common.Hash, data []byte) (*business.SavingsPot, error) {
	var raw rawSavingsPot
	if err := c.abi.UnpackIntoInterface(&raw, MethodGetSavingsPotDetails, data); err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", MethodGetSavingsPotDetails, err)
	}
	return &business.SavingsPot{
		ID:               id,
		Owner:            raw.Owner,
		Name:             raw.Name,
		TargetAmountWei:  raw.TargetAmount,
		CurrentAmountWei: raw.CurrentAmount,
		Timestamp:        unixTime(raw.Timestamp),
		Status:           business.SavingsPotStatus(raw.Status),
		Remarks:          raw.Remarks,
	}, nil
}

func toHashes(ids [][32]byte) []common.Hash {
	hashes := make([]common.Hash, 0, len(ids))
	for _, id := range ids {
		hashes = append(hashes, common.Hash(id))
	}
	return hashes
}

func unixTime(ts *big.Int) time.Time {
	if ts == nil || !ts.IsInt64() {
		return time.Time{}
	}
	return time.Unix(ts.Int64(), 0).UTC()
}
