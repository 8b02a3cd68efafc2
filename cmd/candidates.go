package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safecli/safeaddrs/safe"
	"github.com/safecli/safeaddrs/ui"
)

var candidatesCmd = &cobra.Command{
	Use:       "candidates [role...]",
	Short:     "Show the known deployments of each Safe contract in the order they are tried",
	Long:      ``,
	ValidArgs: roleNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		roles, err := rolesFromArgs(args)
		if err != nil {
			return err
		}
		printCandidates(ui.NewTerminalUI(), roles)
		return nil
	},
}

func printCandidates(u ui.UI, roles []safe.Role) {
	for _, role := range roles {
		u.Section(role.String())
		rows := [][]string{}
		for i, c := range safe.Candidates(role) {
			rows = append(rows, []string{fmt.Sprintf("%d", i+1), c.Address.Hex(), c.Label()})
		}
		u.Indent().Table([]string{"#", "Address", "Version"}, rows)
	}
}

func init() {
	rootCmd.AddCommand(candidatesCmd)
}
