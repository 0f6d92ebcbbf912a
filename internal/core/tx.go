package core

type Transfer struct {
	Account    string `json:"account"`
	Amount     int64  `json:"amount"`
	IsApproval bool   `json:"is_approval"`
}

type TokenTransfer struct {
	TokenID    string `json:"token_id"`
	Account    string `json:"account"`
	Amount     int64  `json:"amount"`
	IsApproval bool   `json:"is_approval"`
}

type NftTransfer struct {
	TokenID           string  `json:"token_id"`
	SerialNumber      int64   `json:"serial_number"`
	SenderAccountID   *string `json:"sender_account_id"`
	ReceiverAccountID *string `json:"receiver_account_id"`
	IsApproval        bool    `json:"is_approval"`
}

type Transaction struct {
	ConsensusTimestamp string  `json:"consensus_timestamp"`
	TransactionID      string  `json:"transaction_id"`
	TransactionHash    string  `json:"transaction_hash"`
	Name               string  `json:"name"`
	Result             string  `json:"result"`
	EntityID           *string `json:"entity_id"`
	Node               *string `json:"node"`
	ChargedTxFee       int64   `json:"charged_tx_fee"`
	MaxFee             string  `json:"max_fee"`
	MemoBase64         string  `json:"memo_base64"`
	Nonce              int     `json:"nonce"`
	Scheduled          bool    `json:"scheduled"`
	ValidStartTime     string  `json:"valid_start_timestamp"`

	Transfers      []Transfer      `json:"transfers"`
	TokenTransfers []TokenTransfer `json:"token_transfers"`
	NftTransfers   []NftTransfer   `json:"nft_transfers"`
}

type TransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Links        Links          `json:"links"`
}

// TransactionByIDResponse is returned by /transactions/{id}:
// all the transactions sharing the same transaction id (parent, children, scheduled).
type TransactionByIDResponse struct {
	Transactions []*Transaction `json:"transactions"`
}
