package commands

import (
	"github.com/spf13/cobra"

	"github.com/feral-file/ff-algorand-indexer/internal/providers/algorand"
)

func applicationsCmd() *cobra.Command {
	var (
		page          pageFlags
		applicationID uint64
		creator       string
	)

	cmd := &cobra.Command{
		Use:   "applications",
		Short: "Search for applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := idx.Applications(cmd.Context(), &algorand.QueryApplications{
				ApplicationID: optUint64(cmd, "application-id", applicationID),
				Creator:       creator,
				IncludeAll:    page.includeAll,
				Limit:         page.limitPtr(cmd),
				Next:          page.next,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	page.register(cmd)
	cmd.Flags().Uint64Var(&applicationID, "application-id", 0, "Only this application")
	cmd.Flags().StringVar(&creator, "creator", "", "Only applications created by this address")
	return cmd
}

func applicationCmd() *cobra.Command {
	var includeAll bool

	cmd := &cobra.Command{
		Use:   "application <id>",
		Short: "Look up an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("application", args[0])
			if err != nil {
				return err
			}
			resp, err := idx.ApplicationInfo(cmd.Context(), id, &algorand.QueryApplicationInfo{IncludeAll: includeAll})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().BoolVar(&includeAll, "include-all", false, "Include a deleted application")
	return cmd
}
