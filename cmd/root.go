// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/safecli/safeaddrs/config"
	"github.com/safecli/safeaddrs/networks"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "safeaddrs",
	Short: "Find which Safe contract deployments exist on a network",
	Long: fmt.Sprintf(`safeaddrs finds, for an EVM network, the addresses of the Safe multisig
contracts (master copy, L2 master copy, fallback handler, proxy factory, multisend and
multisend call only) that are actually deployed there.

Every contract has a list of known deployments, v1.4.1 first and the compatible v1.3.0
deployments (canonical, eip155 and zkSync) after it. The first one that has code on the
network is picked.

Nodes of the built-in networks can be overridden by env vars, eg. %s for mainnet.
Custom networks are read from %s.`,
		networks.EthereumMainnet.GetNodeVariableName(),
		networks.CustomNetworksDir,
	),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(config.Verbosity)
	},
}

func setupLogging(verbosity int) {
	log.SetDefault(log.NewLogger(newLogHandler(verbosity, os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))))
}

// newLogHandler maps --verbosity to a handler, 0 or below discards
// everything.
func newLogHandler(verbosity int, out io.Writer, useColor bool) slog.Handler {
	if verbosity <= 0 {
		return log.DiscardHandler()
	}
	return log.NewTerminalHandlerWithLevel(out, log.FromLegacyLevel(verbosity), useColor)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.Network, "network", "k", "mainnet", "network to resolve addresses on, see \"safeaddrs network list\"")
	rootCmd.PersistentFlags().StringVar(&config.Node, "node", "", "custom node url, the network is detected from its chain id. Overrides --network")
	rootCmd.PersistentFlags().IntVar(&config.Verbosity, "verbosity", 2, "log level, 0=silent 1=error 2=warn 3=info 4=debug 5=trace")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
