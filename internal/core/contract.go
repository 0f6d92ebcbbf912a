package core

type Contract struct {
	ContractID       string  `json:"contract_id"`
	EvmAddress       string  `json:"evm_address"`
	FileID           *string `json:"file_id"`
	Memo             string  `json:"memo"`
	Deleted          bool    `json:"deleted"`
	CreatedTimestamp string  `json:"created_timestamp"`
	Bytecode         string  `json:"bytecode,omitempty"`
	RuntimeBytecode  string  `json:"runtime_bytecode,omitempty"`
	AdminKey         *Key    `json:"admin_key"`
}

// ContractCallRequest is the body of a contract call simulation.
type ContractCallRequest struct {
	Data     string `json:"data"`
	To       string `json:"to"`
	Estimate bool   `json:"estimate,omitempty"`
	Block    string `json:"block,omitempty"`
}

type ContractCallResult struct {
	Result string `json:"result"`
}
