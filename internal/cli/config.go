package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
)

// configKeys are the settings the CLI reads from its config file
var configKeys = map[string]string{
	"server_url":      "calendrical server URL; empty runs calculations locally",
	"output":          "default output format: table, json, yaml",
	"zone":            "default time zone id",
	"zoneinfo_dir":    "zoneinfo directory used in local mode",
	"zone_cache_size": "number of zones kept loaded in local mode",
	"log_level":       "log level in local mode",
}

func newConfigCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
	}

	cmd.AddCommand(newConfigSetCmd(st))
	cmd.AddCommand(newConfigGetCmd(st))
	cmd.AddCommand(newConfigListCmd(st))

	return cmd
}

func newConfigSetCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "set <key> <value>",
		Short:   "Set a configuration value",
		Example: `  calendrical config set zone Europe/Berlin`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := configKeys[args[0]]; !ok {
				return fmt.Errorf("unknown config key %q", args[0])
			}
			st.v.Set(args[0], args[1])
			path, err := st.writeConfig()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s (%s)\n", args[0], args[1], path)
			return nil
		},
	}
}

func newConfigGetCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			val := st.v.Get(args[0])
			if val == nil || val == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: (not set)\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", args[0], val)
			}
			return nil
		},
	}
}

func newConfigListCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]string, 0, len(configKeys))
			for k := range configKeys {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			t := NewTable(cmd.OutOrStdout(), "KEY", "VALUE", "DESCRIPTION")
			for _, k := range keys {
				t.AddRow(k, st.v.GetString(k), configKeys[k])
			}
			return t.Render()
		},
	}
}

func (st *state) writeConfig() (string, error) {
	path := st.cfgFile
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, "config.yaml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := st.v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}
