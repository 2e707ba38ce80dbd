package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/halmaawali/rollbook/internal/report"
)

func newMemberCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage the roster",
	}
	cmd.AddCommand(
		newMemberAddCmd(a),
		newMemberListCmd(a),
		newMemberRemoveCmd(a),
		newMemberImportCmd(a),
	)
	return cmd
}

func newMemberAddCmd(a *app) *cobra.Command {
	var groupID string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a member to the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			member, err := a.roster.AddMember(cmd.Context(), args[0], groupID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", member.Name, member.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&groupID, "group", "", "Group id to assign the member to")
	return cmd
}

func newMemberListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the roster grouped by group",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			total := 0
			for _, block := range a.roster.Roster(cmd.Context()) {
				label := report.UnassignedLabel
				id := "-"
				if block.Group != nil {
					label = block.Group.Name
					id = block.Group.ID
				}
				if block.Group == nil && len(block.Members) == 0 {
					continue
				}
				fmt.Fprintf(out, "%s [%s] (%d)\n", label, id, len(block.Members))
				for _, member := range block.Members {
					fmt.Fprintf(out, "  %s  %s  joined %s\n",
						member.ID, member.Name, member.JoinDate.Format("2006-01-02"))
					total++
				}
			}
			fmt.Fprintf(out, "Total: %d\n", total)
			return nil
		},
	}
}

func newMemberRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a member from the roster",
		Long:  "Removes the member record. Saved attendance history is never touched.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.roster.DeleteMember(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Member removed")
			return nil
		},
	}
}

func newMemberImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Bulk-import members from a plain name list",
		Long:  "Reads FILE as one member name per line, skipping blank lines. Imported members start unassigned.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			count, err := a.roster.ImportMembers(cmd.Context(), string(data))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d members\n", count)
			return nil
		},
	}
}
