package core

type TimestampRange struct {
	From string  `json:"from"`
	To   *string `json:"to"`
}

type Block struct {
	Number       int64          `json:"number"`
	Hash         string         `json:"hash"`
	PreviousHash string         `json:"previous_hash"`
	Name         string         `json:"name"`
	HapiVersion  string         `json:"hapi_version"`
	Count        int            `json:"count"`
	Size         int            `json:"size"`
	GasUsed      int64          `json:"gas_used"`
	LogsBloom    string         `json:"logs_bloom"`
	Timestamp    TimestampRange `json:"timestamp"`
}

type BlocksResponse struct {
	Blocks []*Block `json:"blocks"`
	Links  Links    `json:"links"`
}
