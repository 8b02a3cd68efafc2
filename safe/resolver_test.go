package safe

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	name     string
	deployed map[common.Address]bool
	failOn   map[common.Address]error
	queried  []common.Address
}

func newFakeClient(name string, deployed ...common.Address) *fakeClient {
	fc := &fakeClient{
		name:     name,
		deployed: map[common.Address]bool{},
		failOn:   map[common.Address]error{},
	}
	for _, a := range deployed {
		fc.deployed[a] = true
	}
	return fc
}

func (fc *fakeClient) IsContract(address common.Address) (bool, error) {
	fc.queried = append(fc.queried, address)
	if err, found := fc.failOn[address]; found {
		return false, err
	}
	return fc.deployed[address], nil
}

func (fc *fakeClient) NetworkName() string {
	return fc.name
}

func TestSelectDeployedAddressFirstMatch(t *testing.T) {
	a := common.HexToAddress("0x000000000000000000000000000000000000000a")
	b := common.HexToAddress("0x000000000000000000000000000000000000000b")
	c := common.HexToAddress("0x000000000000000000000000000000000000000c")
	candidates := CandidateList{{a, v141, ""}, {b, v130, ""}, {c, v130, noteEIP155}}

	client := newFakeClient("mainnet", b, c)
	addr, err := selectDeployedAddress(Wallet, candidates, client)
	require.NoError(t, err)
	require.Equal(t, b, addr)
	require.Equal(t, []common.Address{a, b}, client.queried)
}

func TestSelectDeployedAddressUnsupported(t *testing.T) {
	x := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	y := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	client := newFakeClient("testnet-7")

	_, err := selectDeployedAddress(FallbackHandler, CandidateList{{x, v141, ""}, {y, v130, ""}}, client)
	require.ErrorIs(t, err, ErrUnsupportedNetwork)

	var unsupported *UnsupportedNetworkError
	require.True(t, errors.As(err, &unsupported))
	require.Equal(t, "testnet-7", unsupported.Network)
	require.Equal(t, FallbackHandler, unsupported.Role)
	require.Contains(t, err.Error(), "testnet-7")
	require.Len(t, client.queried, 2)
}

func TestSelectDeployedAddressEmptyList(t *testing.T) {
	client := newFakeClient("devnet")
	_, err := selectDeployedAddress(MultiSend, nil, client)
	require.ErrorIs(t, err, ErrUnsupportedNetwork)
	require.Empty(t, client.queried)
}

func TestSelectDeployedAddressClientError(t *testing.T) {
	a := common.HexToAddress("0x000000000000000000000000000000000000000a")
	b := common.HexToAddress("0x000000000000000000000000000000000000000b")
	nodeErr := fmt.Errorf("couldn't read from any nodes")
	client := newFakeClient("mainnet", b)
	client.failOn[a] = nodeErr

	_, err := selectDeployedAddress(ProxyFactory, CandidateList{{a, v141, ""}, {b, v130, ""}}, client)
	require.ErrorIs(t, err, nodeErr)
	require.NotErrorIs(t, err, ErrUnsupportedNetwork)
	require.Equal(t, []common.Address{a}, client.queried)
}

func TestResolveEveryCandidatePosition(t *testing.T) {
	for _, role := range Roles() {
		table := Candidates(role)
		require.NotEmpty(t, table, role.String())
		for i, want := range table {
			t.Run(fmt.Sprintf("%s/%d", role, i), func(t *testing.T) {
				client := newFakeClient("net", table[i:].Addresses()...)
				addr, err := Resolve(role, client)
				require.NoError(t, err)
				require.Equal(t, want.Address, addr)
				require.Len(t, client.queried, i+1)
			})
		}
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	client := newFakeClient("base", Candidates(MultiSendCallOnly)[1].Address)
	first, err := ResolveMultiSendCallOnlyAddress(client)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := ResolveMultiSendCallOnlyAddress(client)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestPerRoleResolvers(t *testing.T) {
	resolvers := map[Role]func(Client) (common.Address, error){
		Wallet:            ResolveWalletAddress,
		WalletL2:          ResolveWalletL2Address,
		FallbackHandler:   ResolveFallbackHandlerAddress,
		ProxyFactory:      ResolveProxyFactoryAddress,
		MultiSend:         ResolveMultiSendAddress,
		MultiSendCallOnly: ResolveMultiSendCallOnlyAddress,
	}
	for role, resolve := range resolvers {
		want := Candidates(role)[0].Address
		addr, err := resolve(newFakeClient("mainnet", want))
		require.NoError(t, err, role.String())
		require.Equal(t, want, addr, role.String())

		_, err = resolve(newFakeClient("unknown"))
		require.ErrorIs(t, err, ErrUnsupportedNetwork, role.String())
	}
}

func TestResolveUnknownRole(t *testing.T) {
	_, err := Resolve(Role(42), newFakeClient("mainnet"))
	require.ErrorIs(t, err, ErrUnknownRole)
}

func TestResolveAllPartial(t *testing.T) {
	deployed := []common.Address{}
	for _, role := range Roles() {
		if role == MultiSendCallOnly {
			continue
		}
		deployed = append(deployed, Candidates(role)[2].Address)
	}
	res, err := ResolveAll(newFakeClient("polygon", deployed...))
	require.ErrorIs(t, err, ErrUnsupportedNetwork)
	require.Len(t, res, len(Roles())-1)
	require.Equal(t, Candidates(Wallet)[2].Address, res[Wallet])
	_, found := res[MultiSendCallOnly]
	require.False(t, found)
}

func TestLastWalletAddress(t *testing.T) {
	client := newFakeClient("any", Candidates(Wallet)[0].Address, Candidates(WalletL2)[0].Address)

	addr, err := LastWalletAddress(client, 1)
	require.NoError(t, err)
	require.Equal(t, Candidates(Wallet)[0].Address, addr)

	addr, err = LastWalletAddress(client, 8453)
	require.NoError(t, err)
	require.Equal(t, Candidates(WalletL2)[0].Address, addr)
}

func TestCandidatesReturnsCopy(t *testing.T) {
	table := Candidates(Wallet)
	original := table[0].Address
	table[0].Address = common.Address{}
	require.Equal(t, original, Candidates(Wallet)[0].Address)
	require.Nil(t, Candidates(Role(99)))
}

func TestCandidateTablesWellFormed(t *testing.T) {
	for _, role := range Roles() {
		table := Candidates(role)
		require.Equal(t, v141, table[0].Version, role.String())
		seen := map[common.Address]bool{}
		for _, c := range table {
			require.NotEqual(t, common.Address{}, c.Address)
			require.False(t, seen[c.Address], "%s lists %s twice", role, c.Address.Hex())
			seen[c.Address] = true
		}
	}
}

func TestMustCandidatesRejectsDuplicates(t *testing.T) {
	a := common.HexToAddress("0x000000000000000000000000000000000000000a")
	require.Panics(t, func() {
		mustCandidates(Candidate{a, v141, ""}, Candidate{a, v130, ""})
	})
	require.Panics(t, func() { hexAddr("0x1234") })
}

func TestParseRole(t *testing.T) {
	for _, role := range Roles() {
		parsed, err := ParseRole(role.String())
		require.NoError(t, err)
		require.Equal(t, role, parsed)
	}
	parsed, err := ParseRole(" MultiSend-Call-Only ")
	require.NoError(t, err)
	require.Equal(t, MultiSendCallOnly, parsed)

	_, err = ParseRole("guard")
	require.ErrorIs(t, err, ErrUnknownRole)
	require.Equal(t, "role(42)", Role(42).String())
}

func TestCandidateLabel(t *testing.T) {
	require.Equal(t, "v1.4.1", Candidate{Version: v141}.Label())
	require.Equal(t, "v1.3.0 zksync", Candidate{Version: v130, Note: noteZkSync}.Label())
}
