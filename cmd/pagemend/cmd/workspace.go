package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage named document workspaces",
	Long: `Register document directories under short names so batch commands
can address a corpus by name instead of a path.

Examples:
  pagemend workspace add newspapers /data/newspapers/page
  pagemend repair newspapers
  pagemend workspace list`,
}

var workspaceAddCmd = &cobra.Command{
	Use:          "add <name> <directory>",
	Short:        "Register a directory under a name",
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry(GetConfig())
		if err != nil {
			return err
		}
		if err := reg.Add(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "registered %s\n", args[0])
		return nil
	},
}

var workspaceRemoveCmd = &cobra.Command{
	Use:          "remove <name>",
	Short:        "Remove a registered workspace",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry(GetConfig())
		if err != nil {
			return err
		}
		if err := reg.Remove(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
		return nil
	},
}

var workspaceListCmd = &cobra.Command{
	Use:          "list",
	Short:        "List registered workspaces",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry(GetConfig())
		if err != nil {
			return err
		}
		entries, err := reg.List()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no workspaces registered")
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", e.Name, e.Dir)
		}
		return nil
	},
}

func init() {
	workspaceCmd.AddCommand(workspaceAddCmd, workspaceRemoveCmd, workspaceListCmd)
	rootCmd.AddCommand(workspaceCmd)
}
