package chain

import (
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/core-launch/goapi/base/ctx"
	baseEthereum "github.com/core-launch/goapi/base/ethereum"
	"github.com/core-launch/goapi/base/log"
	"github.com/core-launch/goapi/base/metrics"
	"github.com/core-launch/goapi/domain"
	"github.com/core-launch/goapi/domain/wallet"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

const (
	defaultTxWaitTimeout  = 2 * time.Minute
	defaultMaxConcurrency = 10
)

type ClientCfg struct {
	RpcUrls map[domain.ChainId]string
	// TxWaitTimeout bounds the wait for a submitted write to be mined.
	// Exceeding it fails the attempt as a transport failure; the write may
	// still land on chain later.
	TxWaitTimeout time.Duration
	// MaxConcurrency caps in-flight rpc calls per endpoint
	MaxConcurrency int
}

type Client interface {
	// Call performs a read against a deployed contract.
	Call(c bCtx.Ctx, chainId domain.ChainId, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	// Transact signs, submits and waits out a state changing call carrying
	// value. It returns only once the transaction is included, or fails with
	// one of the domain error categories.
	Transact(c bCtx.Ctx, signer wallet.Signer, chainId domain.ChainId, addr common.Address, value *big.Int, gasLimit uint64, _abi abi.ABI, method string, params ...interface{}) (*types.Receipt, error)
	// BlockNumber probes rpc reachability.
	BlockNumber(c bCtx.Ctx, chainId domain.ChainId) (uint64, error)
}

type clientImpl struct {
	clients       map[domain.ChainId]*baseEthereum.ThrottledClient
	txWaitTimeout time.Duration
	met           metrics.Service
}

func NewClient(c bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	maxConcurrency := cfg.MaxConcurrency
	if maxConcurrency == 0 {
		maxConcurrency = defaultMaxConcurrency
	}
	var anyerr error
	clients := make(map[domain.ChainId]*baseEthereum.ThrottledClient)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(c, url)
		if err != nil {
			anyerr = err
			c.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = baseEthereum.NewThrottledClient(client, maxConcurrency)
	}
	timeout := cfg.TxWaitTimeout
	if timeout == 0 {
		timeout = defaultTxWaitTimeout
	}
	return &clientImpl{
		clients:       clients,
		txWaitTimeout: timeout,
		met:           metrics.New("chain"),
	}, anyerr
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	defer c.met.BumpTime("call.latency", "method", method).End()

	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, signer wallet.Signer, chainId domain.ChainId, addr common.Address, value *big.Int, gasLimit uint64, _abi abi.ABI, method string, params ...interface{}) (*types.Receipt, error) {
	defer c.met.BumpTime("transact.latency", "method", method).End()

	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	// the identity is derived per write, never cached
	session, err := signer.Session(ctx)
	if err != nil {
		return nil, err
	}
	if session.ChainId != chainId {
		return nil, domain.ErrWrongNetwork
	}
	from := common.HexToAddress(string(session.Address))

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}

	nonce, err := client.PendingNonceAt(ctx, from)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return nil, classifySubmitError(err)
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return nil, classifySubmitError(err)
	}
	if gasLimit == 0 {
		gasLimit, err = client.EstimateGas(ctx, ethereum.CallMsg{
			From:  from,
			To:    &addr,
			Value: value,
			Data:  data,
		})
		if err != nil {
			ctx.WithFields(log.Fields{
				"method": method,
				"err":    err,
			}).Error("client.EstimateGas failed")
			return nil, classifySubmitError(err)
		}
	}

	tx := types.NewTransaction(nonce, addr, value, gasLimit, gasPrice, data)
	signed, err := signer.SignTx(ctx, chainId, tx)
	if err != nil {
		return nil, err
	}

	if err := client.SendTransaction(ctx, signed); err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"tx":     signed.Hash().Hex(),
			"err":    err,
		}).Error("client.SendTransaction failed")
		return nil, classifySubmitError(err)
	}

	waitCtx, cancel := bCtx.WithTimeout(ctx, c.txWaitTimeout)
	defer cancel()
	receipt, err := bind.WaitMined(waitCtx, client, signed)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"tx":     signed.Hash().Hex(),
			"err":    err,
		}).Error("bind.WaitMined failed")
		return nil, classifySubmitError(err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		c.met.BumpSum("transact.err", 1, "method", method)
		ctx.WithFields(log.Fields{
			"method": method,
			"tx":     signed.Hash().Hex(),
		}).Warn("transaction reverted")
		return nil, domain.ErrRemoteRejected
	}
	return receipt, nil
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx, chainId domain.ChainId) (uint64, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return 0, ErrUnsupportedChain
	}
	return client.BlockNumber(ctx)
}
