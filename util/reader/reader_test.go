package reader

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/safecli/safeaddrs/safe"
)

type fakeNode struct {
	name    string
	code    map[common.Address][]byte
	chainID uint64
	err     error
}

func (fn *fakeNode) NodeName() string { return fn.name }
func (fn *fakeNode) NodeURL() string  { return "fake://" + fn.name }

func (fn *fakeNode) GetCode(address common.Address) ([]byte, error) {
	if fn.err != nil {
		return nil, fn.err
	}
	return fn.code[address], nil
}

func (fn *fakeNode) ChainID() (uint64, error) {
	if fn.err != nil {
		return 0, fn.err
	}
	return fn.chainID, nil
}

type closingNode struct {
	fakeNode
	closed int
}

func (cn *closingNode) Close() { cn.closed++ }

var deployedAddr = common.HexToAddress("0x41675C099F32341bf84BFc5382aF534df5C7461a")

func TestIsContractFirstHealthyNodeWins(t *testing.T) {
	r := NewEthReaderWithNodes(map[string]EthereumNode{
		"down": &fakeNode{name: "down", err: fmt.Errorf("connection refused")},
		"up":   &fakeNode{name: "up", code: map[common.Address][]byte{deployedAddr: {0x60, 0x80}}},
	}, "mainnet")

	deployed, err := r.IsContract(deployedAddr)
	require.NoError(t, err)
	require.True(t, deployed)

	deployed, err = r.IsContract(common.HexToAddress("0x01"))
	require.NoError(t, err)
	require.False(t, deployed)
	require.Equal(t, "mainnet", r.NetworkName())
}

func TestIsContractAllNodesDown(t *testing.T) {
	r := NewEthReaderWithNodes(map[string]EthereumNode{
		"a": &fakeNode{name: "a", err: fmt.Errorf("timeout")},
		"b": &fakeNode{name: "b", err: fmt.Errorf("bad gateway")},
	}, "bsc")

	_, err := r.IsContract(deployedAddr)
	require.Error(t, err)
	require.Contains(t, err.Error(), "a: timeout")
	require.Contains(t, err.Error(), "b: bad gateway")

	_, err = NewEthReaderWithNodes(nil, "empty").IsContract(deployedAddr)
	require.Error(t, err)
}

func TestEthReaderResolvesSafeAddress(t *testing.T) {
	l2 := safe.Candidates(safe.WalletL2)[2].Address
	r := NewEthReaderWithNodes(map[string]EthereumNode{
		"node": &fakeNode{name: "node", code: map[common.Address][]byte{l2: {0x01}}},
	}, "polygon")

	addr, err := safe.ResolveWalletL2Address(r)
	require.NoError(t, err)
	require.Equal(t, l2, addr)

	_, err = safe.ResolveMultiSendAddress(r)
	require.ErrorIs(t, err, safe.ErrUnsupportedNetwork)
	require.Contains(t, err.Error(), "polygon")
}

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
	Params []any           `json:"params"`
}

func newRPCServer(t *testing.T, chainID string, code map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var r rpcRequest
		if err := json.NewDecoder(req.Body).Decode(&r); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var result any
		switch r.Method {
		case "eth_chainId":
			result = chainID
		case "eth_getCode":
			result = "0x"
			if c, found := code[strings.ToLower(fmt.Sprint(r.Params[0]))]; found {
				result = c
			}
		default:
			http.Error(w, "unexpected method "+r.Method, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      r.ID,
			"result":  result,
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestOneNodeReaderOverJSONRPC(t *testing.T) {
	server := newRPCServer(t, "0x2105", map[string]string{
		strings.ToLower(deployedAddr.Hex()): "0x6080604052",
	})
	onr := NewOneNodeReader("local", server.URL)
	defer onr.Close()

	code, err := onr.GetCode(deployedAddr)
	require.NoError(t, err)
	require.Equal(t, []byte{0x60, 0x80, 0x60, 0x40, 0x52}, code)

	code, err = onr.GetCode(common.HexToAddress("0x02"))
	require.NoError(t, err)
	require.Empty(t, code)

	id, err := onr.ChainID()
	require.NoError(t, err)
	require.EqualValues(t, 8453, id)
}

func TestNewEthReaderFromNodeNamesNetwork(t *testing.T) {
	r, err := NewEthReaderFromNode(newRPCServer(t, "0x2105", nil).URL)
	require.NoError(t, err)
	require.Equal(t, "base", r.NetworkName())

	r, err = NewEthReaderFromNode(newRPCServer(t, "0x7a69", nil).URL)
	require.NoError(t, err)
	require.Equal(t, "unknown (chain id 31337)", r.NetworkName())
}

func TestEthReaderClose(t *testing.T) {
	closing := &closingNode{fakeNode: fakeNode{name: "closing"}}
	r := NewEthReaderWithNodes(map[string]EthereumNode{
		"closing": closing,
		"plain":   &fakeNode{name: "plain"},
	}, "mainnet")

	r.Close()
	require.Equal(t, 1, closing.closed)
}

func TestOneNodeReaderRedialsAfterClose(t *testing.T) {
	server := newRPCServer(t, "0x1", nil)
	r := NewEthReaderGeneric(map[string]string{"local": server.URL}, "mainnet")

	id, err := r.ChainID()
	require.NoError(t, err)
	require.EqualValues(t, 1, id)

	r.Close()
	id, err = r.ChainID()
	require.NoError(t, err)
	require.EqualValues(t, 1, id)
	r.Close()
}
