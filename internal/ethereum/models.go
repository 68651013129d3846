package ethereum

import "github.com/ethereum/go-ethereum/common"

// Transaction is the part of a transaction and its receipt the detector reads.
type Transaction struct {
	TransactionHash string
	From            string
	Logs            []Log
}

// Log is a single receipt log entry. Data keeps the raw 0x-prefixed hex payload.
type Log struct {
	Address string
	Data    string
}

type rpcBlock struct {
	Number       string        `json:"number"`
	Transactions []common.Hash `json:"transactions"`
}
