package rndm

import (
	"math/rand"

	"github.com/ledgerscope/explorer/internal/core"
)

func Account() *core.Account {
	return &core.Account{
		Account:    EntityID(),
		EvmAddress: Hex(20),
		Memo:       String(8),
		Key:        &core.Key{Type: "ED25519", Key: Hex(32)[2:]},
		Balance: core.Balance{
			Balance:   rand.Int63n(1_000_000_000_000),
			Timestamp: timestamp(),
		},
		CreatedTimestamp: timestamp(),
	}
}

func Contract() *core.Contract {
	return &core.Contract{
		ContractID:       EntityID(),
		EvmAddress:       Hex(20),
		CreatedTimestamp: timestamp(),
	}
}

func Token() *core.Token {
	return &core.Token{
		TokenID:           EntityID(),
		Name:              String(10),
		Symbol:            String(3),
		Type:              "FUNGIBLE_COMMON",
		Decimals:          "8",
		TotalSupply:       "100000000000",
		TreasuryAccountID: EntityID(),
		CreatedTimestamp:  timestamp(),
	}
}
