package core

type Token struct {
	TokenID     string `json:"token_id"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Type        string `json:"type"`
	Decimals    string `json:"decimals"`
	TotalSupply string `json:"total_supply"`
	MaxSupply   string `json:"max_supply"`
	Memo        string `json:"memo"`
	Deleted     bool   `json:"deleted"`
	Metadata    string `json:"metadata"`

	TreasuryAccountID string `json:"treasury_account_id"`
	CreatedTimestamp  string `json:"created_timestamp"`
}

// TokenMetadata is a document fetched from a content-addressable location
// referenced by token metadata.
type TokenMetadata struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Type        string         `json:"type"`
	Properties  map[string]any `json:"properties,omitempty"`
}
