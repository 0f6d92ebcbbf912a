package rndm

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ledgerscope/explorer/internal/core"
)

var (
	seconds = time.Now().Unix()
	nanos   int64
	tsMx    sync.Mutex
)

// timestamp returns a consensus timestamp greater than any returned before.
func timestamp() string {
	tsMx.Lock()
	defer tsMx.Unlock()

	nanos += 1 + rand.Int63n(1000)
	if nanos >= 1e9 {
		seconds++
		nanos -= 1e9
	}
	return fmt.Sprintf("%d.%09d", seconds, nanos)
}

func Transaction() *core.Transaction {
	payer := EntityID()
	ts := timestamp()

	return &core.Transaction{
		ConsensusTimestamp: ts,
		TransactionID:      payer + "-" + ts[:len(ts)-10] + "-" + ts[len(ts)-9:],
		Name:               "CRYPTOTRANSFER",
		Result:             "SUCCESS",
		ChargedTxFee:       rand.Int63n(1_000_000),
		Transfers: []core.Transfer{
			{Account: payer, Amount: -100},
			{Account: EntityID(), Amount: 100},
		},
	}
}

// Transactions returns n transactions in ascending consensus order.
func Transactions(n int) (ret []*core.Transaction) {
	for i := 0; i < n; i++ {
		ret = append(ret, Transaction())
	}
	return ret
}
