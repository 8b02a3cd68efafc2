package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/safecli/safeaddrs/config"
	"github.com/safecli/safeaddrs/networks"
	"github.com/safecli/safeaddrs/ui"
)

var addNetworkCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new network to the supported networks list locally",
	Long: `--config takes a network config json or a path to a json file in the following format:
	{
		"name": "network_name",
		"alternative_names": ["alternative_name_1"],
		"chain_id": 1,
		"native_token_symbol": "ETH",
		"node_variable_name": "MY_NETWORK_NODE",
		"default_nodes": {
			"node_name_1": "node_url_1"
		}
	}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAddNetwork(ui.NewTerminalUI(), config.NetworkConfig)
	},
}

func runAddNetwork(u ui.UI, networkConfig string) error {
	networkConfig = strings.TrimSpace(networkConfig)
	if networkConfig == "" {
		return fmt.Errorf("--config is required")
	}

	content := []byte(networkConfig)
	if !strings.HasPrefix(networkConfig, "{") {
		// a path to a json file
		var err error
		content, err = os.ReadFile(networkConfig)
		if err != nil {
			return fmt.Errorf("couldn't read the provided json file: %w", err)
		}
	}

	newNetwork, err := networks.NewNetworkFromJSON(content)
	if err != nil {
		return fmt.Errorf("the provided json is not a valid network config: %w", err)
	}
	if existing, err := networks.GetNetwork(newNetwork.GetName()); err == nil {
		u.Warn("Network %s (chain id %d) already exists, replacing it.", existing.GetName(), existing.GetChainID())
	}

	err = networks.AddNetwork(newNetwork)
	if err != nil {
		return fmt.Errorf("failed to add the new network: %w", err)
	}
	u.Success("Network %s with chain ID %d added and saved to %s.", newNetwork.GetName(), newNetwork.GetChainID(), networks.CustomNetworksDir)
	return nil
}

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of supported networks",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		printNetworks(ui.NewTerminalUI(), networks.GetSupportedNetworks())
	},
}

func printNetworks(u ui.UI, ns []networks.Network) {
	rows := [][]string{}
	for _, n := range ns {
		rows = append(rows, []string{
			n.GetName(),
			fmt.Sprintf("%d", n.GetChainID()),
			strings.Join(n.GetAlternativeNames(), ", "),
			n.GetNodeVariableName(),
		})
	}
	u.Table([]string{"Name", "Chain ID", "Aliases", "Node env var"}, rows)
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Manage the networks safeaddrs knows about",
}

func init() {
	addNetworkCmd.Flags().StringVar(&config.NetworkConfig, "config", "", "network config json or path to a json file")
	networkCmd.AddCommand(addNetworkCmd)
	networkCmd.AddCommand(listNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}
