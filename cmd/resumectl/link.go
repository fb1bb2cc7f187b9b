package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resumeapi/internal/model"
	"resumeapi/internal/service"
)

var (
	linkTemplate    string
	linkPassword    string
	linkExpiresDays int
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Manage shareable resume links",
}

var linkCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Check whether a link path is valid and free",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Reject locally what the server would reject anyway.
		if err := service.ValidatePath(args[0]); err != nil {
			return err
		}
		out, err := newClient().CheckPath(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !out.Available {
			suggestion, err := newClient().SuggestPath(cmd.Context(), args[0])
			if err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is taken, try %s\n", args[0], suggestion)
				return nil
			}
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}

var linkCreateCmd = &cobra.Command{
	Use:   "create <path>",
	Short: "Publish the resume under a link path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := service.ValidatePath(args[0]); err != nil {
			return err
		}
		l, err := newClient().CreateLink(cmd.Context(), model.CreateLinkRequest{
			Path:          args[0],
			Template:      linkTemplate,
			Password:      linkPassword,
			ExpiresInDays: linkExpiresDays,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), l.URL)
		return nil
	},
}

func init() {
	linkCreateCmd.Flags().StringVar(&linkTemplate, "template", "", "template id (default modern)")
	linkCreateCmd.Flags().StringVar(&linkPassword, "password", "", "require this password to view")
	linkCreateCmd.Flags().IntVar(&linkExpiresDays, "expires-days", 0, "days until the link expires (default from privacy settings)")

	linkCmd.AddCommand(linkCheckCmd, linkCreateCmd)
	rootCmd.AddCommand(linkCmd)
}
