package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/urlpath/urlpath"
)

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [path ...]",
		Short: "Print the canonical form of each path",
		Long:  "Print the canonical form of each path argument, or of each line read from stdin when no arguments are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				for _, arg := range args {
					if _, err := fmt.Fprintln(out, urlpath.New(arg).Normalize()); err != nil {
						return err
					}
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if _, err := fmt.Fprintln(out, urlpath.New(scanner.Text()).Normalize()); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}
}
