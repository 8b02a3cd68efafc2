package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/safecli/safeaddrs/config"
	"github.com/safecli/safeaddrs/networks"
	"github.com/safecli/safeaddrs/safe"
	"github.com/safecli/safeaddrs/util/reader"
)

// networkClient is what the commands need from a network reader.
type networkClient interface {
	safe.Client
	ChainID() (uint64, error)
}

func clientFromFlags() (networkClient, error) {
	if config.Node != "" {
		r, err := reader.NewEthReaderFromNode(config.Node)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	network, err := networks.GetNetwork(config.Network)
	if err != nil {
		return nil, networkNotFoundError(config.Network, err)
	}
	return reader.NewEthReader(network), nil
}

func networkNotFoundError(name string, err error) error {
	if !errors.Is(err, networks.ErrNetworkNotFound) {
		return err
	}
	suggestions := networks.SuggestNetworkNames(name)
	if len(suggestions) == 0 {
		return err
	}
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return fmt.Errorf("%w. Did you mean: %s?", err, strings.Join(suggestions, ", "))
}

// rolesFromArgs parses role names, all roles when args is empty.
func rolesFromArgs(args []string) ([]safe.Role, error) {
	if len(args) == 0 {
		return safe.Roles(), nil
	}
	roles := []safe.Role{}
	for _, arg := range args {
		role, err := safe.ParseRole(arg)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func roleNames() []string {
	res := []string{}
	for _, r := range safe.Roles() {
		res = append(res, r.String())
	}
	return res
}

func candidateLabel(role safe.Role, addr common.Address) string {
	for _, c := range safe.Candidates(role) {
		if c.Address == addr {
			return c.Label()
		}
	}
	return ""
}
