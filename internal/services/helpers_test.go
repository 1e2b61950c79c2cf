package services_test

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	bob   = common.HexToAddress("0x00000000000000000000000000000000000000b2")

	transferID = common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111")
)

// weiMatcher compares *big.Int arguments by value
type weiMatcher struct {
	want *big.Int
}

func (m weiMatcher) Matches(x any) bool {
	v, ok := x.(*big.Int)
	return ok && v != nil && v.Cmp(m.want) == 0
}

func (m weiMatcher) String() string {
	return "is " + m.want.String() + " wei"
}

func wei(v string) gomock.Matcher {
	n, ok := new(big.Int).SetString(v, 10)
	if !ok {
		panic("bad wei literal " + v)
	}
	return weiMatcher{want: n}
}

func connected(addr common.Address) business.WalletStatus {
	return business.WalletStatus{
		Address:     &addr,
		BalanceWei:  big.NewInt(0),
		ChainID:     big.NewInt(12227332),
		IsConnected: true,
	}
}

func receipt(op string) *business.TxReceipt {
	return &business.TxReceipt{Operation: op, TxHash: common.HexToHash("0xbeef"), BlockNumber: 1}
}

func at(unix int64) time.Time {
	return time.Unix(unix, 0).UTC()
}
