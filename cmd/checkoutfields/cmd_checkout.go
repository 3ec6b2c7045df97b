package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-checkoutfields/internal/prompt"
	"github.com/goliatone/go-checkoutfields/pkg/fields"
	"github.com/goliatone/go-checkoutfields/pkg/schema"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Fill in the billing form interactively and submit it",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		rendered, err := e.plugin.BillingFields(ctx, fields.StandardCheckout(), true)
		if err != nil {
			return err
		}
		identity, err := lookupIdentity(ctx, e, customerID)
		if err != nil {
			return err
		}

		payload, err := prompt.CollectSection(ctx, prompt.NewSurveyDriver(), rendered.Section(fields.SectionBilling),
			func(key string) string {
				return e.plugin.Prefill(ctx, "", key, identity)
			})
		if err != nil {
			return err
		}
		if err := schema.Validate(schema.FromSection(rendered, fields.SectionBilling), payload); err != nil {
			return fmt.Errorf("submission rejected: %w", err)
		}
		return submit(ctx, cmd, e, payload)
	},
}

func init() {
	checkoutCmd.Flags().StringVar(&customerID, "customer", "", "customer id (empty for anonymous)")
	checkoutCmd.Flags().StringVar(&orderID, "order", "", "order id (generated when empty)")
	rootCmd.AddCommand(checkoutCmd)
}
