package core

type NetworkNode struct {
	NodeID          int64          `json:"node_id"`
	NodeAccountID   string         `json:"node_account_id"`
	Description     string         `json:"description"`
	Memo            string         `json:"memo"`
	PublicKey       string         `json:"public_key"`
	Stake           int64          `json:"stake"`
	StakeRewarded   int64          `json:"stake_rewarded"`
	RewardRateStart int64          `json:"reward_rate_start"`
	Timestamp       TimestampRange `json:"timestamp"`
}

type NetworkNodesResponse struct {
	Nodes []*NetworkNode `json:"nodes"`
	Links Links          `json:"links"`
}
