package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/urlpath/urlpath"
	"github.com/urlpath/urlpath/internal/config"
)

func newCheckCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that every route path in a config is canonical",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return errors.New("config path is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			offenders := 0
			for _, route := range cfg.Routes {
				canonical := urlpath.Normalize(route.Path)
				if canonical == route.Path {
					continue
				}
				offenders++
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s\n", route.Name, route.Path, canonical); err != nil {
					return err
				}
			}

			if offenders > 0 {
				return fmt.Errorf("%d route path(s) not canonical", offenders)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), "routes ok"); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	return cmd
}
