package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrLookupFailed marks any failure to read chain data for a hash or block.
var ErrLookupFailed error = errors.New("chain lookup failed")

var errBlockNotFound = errors.New("block not found")

type EthService struct {
	client  EthClient
	rpc     RPCCaller
	timeout time.Duration

	mu      sync.Mutex
	chainID *big.Int
}

func NewEthService(ethClient EthClient, rpcCaller RPCCaller, timeout time.Duration) *EthService {
	return &EthService{
		client:  ethClient,
		rpc:     rpcCaller,
		timeout: timeout,
	}
}

// FetchTransaction reads the transaction and its receipt for hashStr. Every
// failure is wrapped with ErrLookupFailed.
func (s *EthService) FetchTransaction(ctx context.Context, hashStr string) (*Transaction, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	hash := common.HexToHash(hashStr)

	tx, _, err := s.client.TransactionByHash(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching transaction %q: %w", ErrLookupFailed, hashStr, err)
	}

	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching receipt %q: %w", ErrLookupFailed, hashStr, err)
	}

	chainID, err := s.getChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching chain id: %w", ErrLookupFailed, err)
	}

	signer := types.LatestSignerForChainID(chainID)
	from, err := types.Sender(signer, tx)
	if err != nil {
		return nil, fmt.Errorf("%w: recovering sender of %q: %w", ErrLookupFailed, hashStr, err)
	}

	logs := make([]Log, 0, len(receipt.Logs))
	for _, lg := range receipt.Logs {
		if lg == nil {
			continue
		}
		logs = append(logs, Log{
			Address: lg.Address.Hex(),
			Data:    hexutil.Encode(lg.Data),
		})
	}

	return &Transaction{
		TransactionHash: tx.Hash().Hex(),
		From:            from.Hex(),
		Logs:            logs,
	}, nil
}

// LatestBlockNumber returns the current chain head.
func (s *EthService) LatestBlockNumber(ctx context.Context) (uint64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	number, err := s.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: fetching block number: %w", ErrLookupFailed, err)
	}
	return number, nil
}

// BlockTransactionHashes lists the hashes of every transaction in block number.
func (s *EthService) BlockTransactionHashes(ctx context.Context, number uint64) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var block *rpcBlock
	err := s.rpc.CallContext(ctx, &block, "eth_getBlockByNumber", hexutil.EncodeUint64(number), false)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching block %d: %w", ErrLookupFailed, number, err)
	}
	if block == nil {
		return nil, fmt.Errorf("%w: block %d: %w", ErrLookupFailed, number, errBlockNotFound)
	}

	hashes := make([]string, 0, len(block.Transactions))
	for _, h := range block.Transactions {
		hashes = append(hashes, h.Hex())
	}
	return hashes, nil
}

func (s *EthService) getChainID(ctx context.Context) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.chainID != nil {
		return s.chainID, nil
	}

	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	s.chainID = chainID
	return chainID, nil
}

func (s *EthService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
