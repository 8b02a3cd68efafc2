package reader

import (
	"github.com/ethereum/go-ethereum/common"
)

type EthereumNode interface {
	NodeName() string
	NodeURL() string
	GetCode(address common.Address) (code []byte, err error)
	ChainID() (uint64, error)
}
