package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-checkoutfields/pkg/fields"
)

var notCheckout bool

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Print the billing fields after the pipeline ran",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		out, err := e.plugin.BillingFields(ctx, fields.StandardCheckout(), !notCheckout)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), out)
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the OpenAPI schema of the billing submission payload",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		s, err := e.plugin.SubmissionSchema(ctx, fields.StandardCheckout(), !notCheckout)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), s)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{fieldsCmd, schemaCmd} {
		cmd.Flags().BoolVar(&notCheckout, "not-checkout", false, "render as if outside the checkout page")
		rootCmd.AddCommand(cmd)
	}
}
