package main

import (
	"fmt"
	"strings"

	"oficina/internal/domain/entities"

	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [description...]",
		Short: "Print the service category for a problem description",
		Example: `  oficinactl classify "troca de pastilha de freio"
  oficinactl classify barulho no motor`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), entities.ClassifyCategoryText(strings.Join(args, " ")))
			return nil
		},
	}
}
