package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the tables of the configured storage backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := opts.openStorage(cmd.Context())
			if err != nil {
				return err
			}
			if err := s.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrate %s: %w", s.Driver, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s storage migrated\n", s.Driver)
			return nil
		},
	}
}
