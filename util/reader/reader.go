package reader

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/safecli/safeaddrs/networks"
)

// EthReader queries every node of a network at once and takes the first
// successful answer.
type EthReader struct {
	nodes       map[string]EthereumNode
	networkName string
}

func NewEthReaderGeneric(nodes map[string]string, networkName string) *EthReader {
	ns := map[string]EthereumNode{}
	for name, c := range nodes {
		ns[name] = NewOneNodeReader(name, c)
	}
	return NewEthReaderWithNodes(ns, networkName)
}

func NewEthReaderWithNodes(nodes map[string]EthereumNode, networkName string) *EthReader {
	return &EthReader{
		nodes:       nodes,
		networkName: networkName,
	}
}

// NewEthReader reads from the network's default nodes and the node set in
// its env var.
func NewEthReader(network networks.Network) *EthReader {
	return NewEthReaderGeneric(networks.Nodes(network), network.GetName())
}

// NewEthReaderFromNode reads from a single node. The network name is looked
// up from the node's chain id.
func NewEthReaderFromNode(url string) (*EthReader, error) {
	r := NewEthReaderGeneric(map[string]string{"custom-node": url}, "")
	chainID, err := r.ChainID()
	if err != nil {
		return nil, err
	}
	r.networkName = networkNameByID(chainID)
	return r, nil
}

func networkNameByID(chainID uint64) string {
	n, err := networks.GetNetworkByID(chainID)
	if err != nil {
		return fmt.Sprintf("unknown (chain id %d)", chainID)
	}
	return n.GetName()
}

func wrapError(e error, name string) error {
	if e == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, e)
}

func (er *EthReader) NetworkName() string {
	return er.networkName
}

// Close drops the connections of every node that holds one. The reader
// redials on its next query.
func (er *EthReader) Close() {
	for _, n := range er.nodes {
		if c, ok := n.(interface{ Close() }); ok {
			c.Close()
		}
	}
}

type getCodeResponse struct {
	Code  []byte
	Error error
}

func (er *EthReader) GetCode(address common.Address) (code []byte, err error) {
	if len(er.nodes) == 0 {
		return nil, fmt.Errorf("no nodes configured for network %s", er.networkName)
	}
	resCh := make(chan getCodeResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			code, err := n.GetCode(address)
			resCh <- getCodeResponse{
				Code:  code,
				Error: wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Code, result.Error
		}
		log.Debug("Node failed to return code", "address", address, "err", result.Error)
		errs = append(errs, result.Error)
	}
	return nil, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

// IsContract reports whether address has code on the network.
func (er *EthReader) IsContract(address common.Address) (bool, error) {
	code, err := er.GetCode(address)
	if err != nil {
		return false, err
	}
	return len(code) > 0, nil
}

type getChainIDResponse struct {
	ChainID uint64
	Error   error
}

func (er *EthReader) ChainID() (uint64, error) {
	if len(er.nodes) == 0 {
		return 0, fmt.Errorf("no nodes configured for network %s", er.networkName)
	}
	resCh := make(chan getChainIDResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			id, err := n.ChainID()
			resCh <- getChainIDResponse{
				ChainID: id,
				Error:   wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.ChainID, nil
		}
		log.Debug("Node failed to return chain id", "err", result.Error)
		errs = append(errs, result.Error)
	}
	return 0, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}
