package core

type Balance struct {
	Balance   int64          `json:"balance"`
	Timestamp string         `json:"timestamp"`
	Tokens    []TokenBalance `json:"tokens"`
}

type TokenBalance struct {
	TokenID string `json:"token_id"`
	Balance int64  `json:"balance"`
}

type Key struct {
	Type string `json:"_type"`
	Key  string `json:"key"`
}

type Account struct {
	Account    string  `json:"account"`
	Alias      *string `json:"alias"`
	EvmAddress string  `json:"evm_address"`
	Memo       string  `json:"memo"`
	Deleted    bool    `json:"deleted"`
	Key        *Key    `json:"key"`

	Balance Balance `json:"balance"`

	CreatedTimestamp string  `json:"created_timestamp"`
	ExpiryTimestamp  *string `json:"expiry_timestamp"`

	StakedNodeID     *int64  `json:"staked_node_id"`
	StakedAccountID  *string `json:"staked_account_id"`
	DeclineReward    bool    `json:"decline_reward"`
	PendingReward    int64   `json:"pending_reward"`
	StakePeriodStart *string `json:"stake_period_start"`

	MaxAutomaticTokenAssociations int `json:"max_automatic_token_associations"`
}
