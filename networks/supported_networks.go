package networks

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/log"
	"github.com/sahilm/fuzzy"
)

// Insert more Network implementation here to support
// more chains
var supportedNetworks = []Network{
	EthereumMainnet,
	Sepolia,
	BSCMainnet,
	Polygon,
	ArbitrumMainnet,
	OptimismMainnet,
	BaseMainnet,
	Avalanche,
	GnosisChain,
	ZkSyncEra,
}

var CustomNetworksDir = defaultCustomNetworksDir()

var (
	globalSupportedNetworks *networks
	globalOnce              sync.Once
)

// registry loads the networks on first use so custom network warnings go
// through the logger the command has set up.
func registry() *networks {
	globalOnce.Do(func() {
		globalSupportedNetworks = newSupportedNetworks(supportedNetworks, CustomNetworksDir)
	})
	return globalSupportedNetworks
}

var ErrNetworkNotFound = fmt.Errorf("network not found")

type networks struct {
	networks     map[string]Network
	networksByID map[uint64]Network
}

func defaultCustomNetworksDir() string {
	usr, err := user.Current()
	if err != nil {
		return ""
	}
	return filepath.Join(usr.HomeDir, ".safeaddrs", "networks")
}

func (n *networks) getSupportedNetworkNames() []string {
	res := []string{}
	for name := range n.networks {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

func (n *networks) getNetworkByID(id uint64) (Network, error) {
	res, found := n.networksByID[id]
	if !found {
		return nil, fmt.Errorf("network id %d: %w", id, ErrNetworkNotFound)
	}
	return res, nil
}

func (n *networks) getNetwork(name string) (Network, error) {
	res, found := n.networks[normalizeName(name)]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func allNames(network Network) []string {
	names := []string{normalizeName(network.GetName())}
	for _, an := range network.GetAlternativeNames() {
		names = append(names, normalizeName(an))
	}
	return names
}

func (n *networks) add(network Network) {
	n.networksByID[network.GetChainID()] = network
	for _, name := range allNames(network) {
		n.networks[name] = network
	}
}

func newSupportedNetworks(builtins []Network, customDir string) *networks {
	result := networks{
		map[string]Network{},
		map[uint64]Network{},
	}
	for _, n := range builtins {
		for _, name := range allNames(n) {
			if _, found := result.networks[name]; found {
				panic(
					fmt.Errorf("network with name or alternative name of '%s' already exists", name),
				)
			}
		}
		result.add(n)
	}

	if customDir == "" {
		return &result
	}
	customNetworks, err := loadCustomNetworks(customDir)
	if err != nil {
		log.Warn("Failed to load custom networks, continuing with built-in networks", "dir", customDir, "err", err)
		return &result
	}

	for _, n := range customNetworks {
		if _, found := result.networks[normalizeName(n.GetName())]; found {
			log.Info("Custom network overrides an existing one", "name", n.GetName())
		}
		if _, found := result.networksByID[n.GetChainID()]; found {
			log.Info("Custom network overrides an existing chain id", "chainid", n.GetChainID())
		}
		result.add(n)
	}
	return &result
}

func loadCustomNetworks(dir string) ([]Network, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob json files in %s: %w", dir, err)
	}

	networks := []Network{}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", file, err)
		}

		network, err := NewNetworkFromJSON(content)
		if err != nil {
			log.Warn("Skipping invalid custom network", "file", file, "err", err)
			continue
		}
		networks = append(networks, network)
	}
	return networks, nil
}

// GetSupportedNetworks returns every distinct network ordered by chain id.
func GetSupportedNetworks() []Network {
	res := []Network{}
	for _, n := range registry().networksByID {
		res = append(res, n)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].GetChainID() < res[j].GetChainID()
	})
	return res
}

func GetNetwork(name string) (Network, error) {
	return registry().getNetwork(name)
}

func GetNetworkByID(id uint64) (Network, error) {
	return registry().getNetworkByID(id)
}

func GetSupportedNetworkNames() []string {
	return registry().getSupportedNetworkNames()
}

// SuggestNetworkNames returns known network names close to input, best match
// first.
func SuggestNetworkNames(input string) []string {
	matches := fuzzy.Find(strings.ToLower(input), GetSupportedNetworkNames())
	res := []string{}
	for _, m := range matches {
		res = append(res, m.Str)
	}
	return res
}

// AddNetwork registers network for this process and stores it under
// CustomNetworksDir so later runs pick it up.
func AddNetwork(network Network) error {
	reg := registry()
	for _, an := range network.GetAlternativeNames() {
		existing, found := reg.networks[normalizeName(an)]
		if found && normalizeName(existing.GetName()) != normalizeName(network.GetName()) {
			return fmt.Errorf("alternative name '%s' is already used by network '%s'", an, existing.GetName())
		}
	}
	reg.add(network)

	if CustomNetworksDir == "" {
		return fmt.Errorf("couldn't determine the custom networks directory")
	}
	err := os.MkdirAll(CustomNetworksDir, 0755)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", CustomNetworksDir, err)
	}

	content, err := network.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal network: %w", err)
	}

	err = os.WriteFile(filepath.Join(CustomNetworksDir, fmt.Sprintf("%s.json", network.GetName())), content, 0644)
	if err != nil {
		return fmt.Errorf("failed to write the new network to file: %w", err)
	}
	return nil
}
