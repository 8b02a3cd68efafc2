package safe

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
)

// Client is the network capability needed to resolve addresses.
type Client interface {
	// IsContract reports whether address hosts deployed code on the
	// connected network.
	IsContract(address common.Address) (bool, error)
	// NetworkName is only used in diagnostics.
	NetworkName() string
}

var ErrUnsupportedNetwork = fmt.Errorf("network is not supported")

// UnsupportedNetworkError is returned when none of a role's candidates is
// deployed on the connected network.
type UnsupportedNetworkError struct {
	Network string
	Role    Role
}

func (e *UnsupportedNetworkError) Error() string {
	return fmt.Sprintf("network %s is not supported (no %s contract deployed)", e.Network, e.Role)
}

func (e *UnsupportedNetworkError) Is(target error) bool {
	return target == ErrUnsupportedNetwork
}

// Resolve returns the first candidate of role deployed on the client's
// network.
func Resolve(role Role, client Client) (common.Address, error) {
	table, found := candidateTables[role]
	if !found {
		return common.Address{}, fmt.Errorf("%s: %w", role, ErrUnknownRole)
	}
	return selectDeployedAddress(role, table, client)
}

func selectDeployedAddress(role Role, candidates CandidateList, client Client) (common.Address, error) {
	for _, c := range candidates {
		deployed, err := client.IsContract(c.Address)
		if err != nil {
			return common.Address{}, fmt.Errorf("checking %s candidate %s: %w", role, c.Address.Hex(), err)
		}
		if deployed {
			log.Debug("Resolved contract", "role", role, "address", c.Address, "version", c.Label())
			return c.Address, nil
		}
		log.Debug("Candidate not deployed", "role", role, "address", c.Address, "version", c.Label())
	}
	return common.Address{}, &UnsupportedNetworkError{
		Network: client.NetworkName(),
		Role:    role,
	}
}

func ResolveWalletAddress(client Client) (common.Address, error) {
	return Resolve(Wallet, client)
}

func ResolveWalletL2Address(client Client) (common.Address, error) {
	return Resolve(WalletL2, client)
}

func ResolveFallbackHandlerAddress(client Client) (common.Address, error) {
	return Resolve(FallbackHandler, client)
}

func ResolveProxyFactoryAddress(client Client) (common.Address, error) {
	return Resolve(ProxyFactory, client)
}

func ResolveMultiSendAddress(client Client) (common.Address, error) {
	return Resolve(MultiSend, client)
}

func ResolveMultiSendCallOnlyAddress(client Client) (common.Address, error) {
	return Resolve(MultiSendCallOnly, client)
}

// ResolveAll resolves every role independently. Roles that fail are left out
// of the result and their errors are joined.
func ResolveAll(client Client) (map[Role]common.Address, error) {
	res := map[Role]common.Address{}
	errs := []error{}
	for _, role := range Roles() {
		addr, err := Resolve(role, client)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		res[role] = addr
	}
	return res, errors.Join(errs...)
}

const mainnetChainID = 1

// LastWalletAddress is the wallet master copy a Safe should run on: the
// events-less contract on Ethereum mainnet, the L2 one everywhere else.
func LastWalletAddress(client Client, chainID uint64) (common.Address, error) {
	if chainID == mainnetChainID {
		return ResolveWalletAddress(client)
	}
	return ResolveWalletL2Address(client)
}
