package rndm

import (
	"sync"

	"github.com/ledgerscope/explorer/internal/core"
)

var (
	blockNumber int64 = 100000
	blockMx     sync.Mutex
)

func Block() *core.Block {
	blockMx.Lock()
	blockNumber++
	n := blockNumber
	blockMx.Unlock()

	from := timestamp()
	to := timestamp()

	return &core.Block{
		Number:       n,
		Hash:         Hex(48),
		PreviousHash: Hex(48),
		Count:        3,
		Timestamp:    core.TimestampRange{From: from, To: &to},
	}
}

// Blocks returns n consecutive blocks in ascending order.
func Blocks(n int) (ret []*core.Block) {
	for i := 0; i < n; i++ {
		ret = append(ret, Block())
	}
	return ret
}
