package cmd

import (
	"fmt"
	"log/slog"

	"github.com/isometry/gh-content-models/models"
	"github.com/spf13/cobra"
)

func cmdURL() *cobra.Command {
	return &cobra.Command{
		Use:   "url [owner name sha]",
		Short: "Print the GitHub API base URL, or the URL of a blob",
		Long: `Without arguments, print the GitHub REST API base URL.
With an owner, a repository name and a SHA, print the URL of that blob.
Segments are used verbatim and are not escaped.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("accepts 0 or 3 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			u := models.BlobAPIBase()
			if len(args) == 3 {
				u = models.BlobURL(args[0], args[1], args[2])
			}
			componentLogger("url").Debug("built url", slog.String("url", u))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}
}

func cmdHeader() *cobra.Command {
	return &cobra.Command{
		Use:   "header",
		Short: "Print the recommended Accept header value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), models.Header())
			return err
		},
	}
}
