package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-checkoutfields/internal/prompt"
	"github.com/goliatone/go-checkoutfields/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the optional field flags",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective flags",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()
		return writeJSON(cmd.OutOrStdout(), e.plugin.Settings(ctx))
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Store a flag value (yes/no)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		known := false
		for _, flag := range settings.Flags() {
			if flag.Key() == args[0] {
				known = true
			}
		}
		if !known {
			return fmt.Errorf("unknown setting %q", args[0])
		}
		value := settings.FormatBool(settings.ParseBool(args[1]))
		if err := e.db.SetOption(ctx, args[0], value); err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), e.plugin.Settings(ctx))
	},
}

var settingsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Toggle the flags interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		current, err := settings.Load(ctx, e.db)
		if err != nil {
			return err
		}
		next, err := prompt.EditSettings(ctx, prompt.NewSurveyDriver(), current)
		if err != nil {
			return err
		}
		if err := settings.Save(ctx, e.db, next); err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), next)
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsEditCmd)
	rootCmd.AddCommand(settingsCmd)
}
