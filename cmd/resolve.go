package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"

	"github.com/safecli/safeaddrs/config"
	"github.com/safecli/safeaddrs/safe"
	"github.com/safecli/safeaddrs/ui"
)

var resolveCmd = &cobra.Command{
	Use:       "resolve [role...]",
	Short:     "Resolve the deployed Safe contract addresses on the network",
	Long:      fmt.Sprintf("Resolve the given roles, or all of them when none is given. Roles: %v", roleNames()),
	ValidArgs: roleNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		roles, err := rolesFromArgs(args)
		if err != nil {
			return err
		}
		client, err := clientFromFlags()
		if err != nil {
			return err
		}
		if c, ok := client.(interface{ Close() }); ok {
			defer c.Close()
		}
		return runResolve(ui.NewTerminalUI(), client, roles, config.JSONOutput)
	},
}

type resolvedRole struct {
	Role    safe.Role
	Address common.Address
	Err     error
}

func runResolve(u ui.UI, client networkClient, roles []safe.Role, jsonOutput bool) error {
	// json output must be the only thing written
	stop := func() {}
	if !jsonOutput {
		stop = u.Spinner(fmt.Sprintf("Checking Safe deployments on %s...", client.NetworkName()))
	}
	results := []resolvedRole{}
	errs := []error{}
	for _, role := range roles {
		addr, err := safe.Resolve(role, client)
		if err != nil {
			errs = append(errs, err)
		}
		results = append(results, resolvedRole{role, addr, err})
	}
	stop()

	if jsonOutput {
		if err := writeResolvedJSON(u, results); err != nil {
			return err
		}
		return errors.Join(errs...)
	}

	u.Section(fmt.Sprintf("Safe contracts on %s", client.NetworkName()))
	rows := [][]string{}
	for _, r := range results {
		rows = append(rows, resolvedRow(u, r))
	}
	u.Table([]string{"Role", "Address", "Version"}, rows)

	if chainID, err := client.ChainID(); err == nil {
		printMasterCopy(u, client, chainID)
	} else {
		log.Debug("Couldn't get chain id", "err", err)
	}

	for _, err := range errs {
		u.Error("%s", err)
	}
	return errors.Join(errs...)
}

func resolvedRow(u ui.UI, r resolvedRole) []string {
	if r.Err == nil {
		return []string{
			r.Role.String(),
			u.Style(ui.StyledText{Text: r.Address.Hex(), Severity: ui.SeveritySuccess}),
			candidateLabel(r.Role, r.Address),
		}
	}
	status := "not deployed"
	if !errors.Is(r.Err, safe.ErrUnsupportedNetwork) {
		status = "query failed"
	}
	return []string{
		r.Role.String(),
		u.Style(ui.StyledText{Text: status, Severity: ui.SeverityError}),
		"-",
	}
}

func printMasterCopy(u ui.UI, client networkClient, chainID uint64) {
	addr, err := safe.LastWalletAddress(client, chainID)
	if err != nil {
		return
	}
	u.Info("")
	u.KeyValue([][2]string{
		{"Chain ID", fmt.Sprintf("%d", chainID)},
		{"Master copy to use", u.Style(ui.StyledText{Text: addr.Hex(), Severity: ui.SeverityCritical})},
	})
}

func writeResolvedJSON(u ui.UI, results []resolvedRole) error {
	out := map[string]string{}
	for _, r := range results {
		if r.Err == nil {
			out[r.Role.String()] = r.Address.Hex()
		}
	}
	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(u.Writer(), string(encoded))
	return err
}

func init() {
	resolveCmd.Flags().BoolVar(&config.JSONOutput, "json", false, "print the resolved addresses as a json object")
	rootCmd.AddCommand(resolveCmd)
}
