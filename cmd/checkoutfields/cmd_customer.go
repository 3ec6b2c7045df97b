package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-checkoutfields/pkg/mergetags"
	"github.com/goliatone/go-checkoutfields/pkg/profile"
)

var (
	customerID string
	orderID    string

	putFirstName string
	putLastName  string
	putEmail     string
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customers",
}

var customerPutCmd = &cobra.Command{
	Use:   "put",
	Short: "Create or replace a customer identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		identity := profile.Identity{ID: customerID, FirstName: putFirstName, LastName: putLastName, Email: putEmail}
		if err := e.db.PutIdentity(ctx, identity); err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), identity)
	},
}

var customerShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a customer identity and its metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		identity, err := e.db.Identity(ctx, customerID)
		if err != nil {
			return err
		}
		meta, err := e.db.AllMeta(ctx, identity.Ref())
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), map[string]any{"identity": identity, "meta": meta})
	},
}

var prefillCmd = &cobra.Command{
	Use:   "prefill KEY...",
	Short: "Resolve the initial checkout values for a customer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		identity, err := lookupIdentity(ctx, e, customerID)
		if err != nil {
			return err
		}
		out := make(map[string]string, len(args))
		for _, key := range args {
			out[key] = e.plugin.Prefill(ctx, "", key, identity)
		}
		return writeJSON(cmd.OutOrStdout(), out)
	},
}

var submitCmd = &cobra.Command{
	Use:   "submit KEY=VALUE...",
	Short: "Submit checkout values for an order (and customer when given)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		payload, err := parsePairs(args)
		if err != nil {
			return err
		}
		return submit(ctx, cmd, e, payload)
	},
}

var customerUpdatedCmd = &cobra.Command{
	Use:   "customer-updated",
	Short: "Run the profile update normalisation for a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		res := e.plugin.CustomerUpdated(ctx, profile.Customer(customerID))
		return writeJSON(cmd.OutOrStdout(), res)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the mailing list merge tags for a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		identity, err := lookupIdentity(ctx, e, customerID)
		if err != nil {
			return err
		}
		tags := e.plugin.MergeTags(ctx, mergetags.Set{}, identity)
		return writeJSON(cmd.OutOrStdout(), tags)
	},
}

func submit(ctx context.Context, cmd *cobra.Command, e *env, payload map[string]string) error {
	id := orderID
	if id == "" {
		id = uuid.NewString()
	}
	written := map[string][]string{}
	res := e.plugin.CheckoutSubmitted(ctx, profile.Order(id), payload)
	written[profile.Order(id).String()] = res.Written
	if customerID != "" {
		ref := profile.Customer(customerID)
		res := e.plugin.CheckoutSubmitted(ctx, ref, payload)
		written[ref.String()] = res.Written
	}
	logger.Info("checkout submitted", zap.String("order", id), zap.String("customer", customerID))
	return writeJSON(cmd.OutOrStdout(), written)
}

// lookupIdentity resolves id, treating an empty id as an anonymous shopper.
func lookupIdentity(ctx context.Context, e *env, id string) (profile.Identity, error) {
	if strings.TrimSpace(id) == "" {
		return profile.Identity{}, nil
	}
	identity, err := e.db.Identity(ctx, id)
	if errors.Is(err, profile.ErrNotFound) {
		logger.Warn("unknown customer, continuing with id only", zap.String("customer", id))
		return profile.Identity{ID: id}, nil
	}
	return identity, err
}

func parsePairs(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected KEY=VALUE, got %q", arg)
		}
		out[key] = value
	}
	return out, nil
}

func init() {
	customerPutCmd.Flags().StringVar(&putFirstName, "first-name", "", "first name")
	customerPutCmd.Flags().StringVar(&putLastName, "last-name", "", "last name")
	customerPutCmd.Flags().StringVar(&putEmail, "email", "", "email address")

	for _, cmd := range []*cobra.Command{customerPutCmd, customerShowCmd, customerUpdatedCmd} {
		cmd.Flags().StringVar(&customerID, "customer", "", "customer id")
		_ = cmd.MarkFlagRequired("customer")
	}
	for _, cmd := range []*cobra.Command{prefillCmd, exportCmd, submitCmd} {
		cmd.Flags().StringVar(&customerID, "customer", "", "customer id (empty for anonymous)")
	}
	submitCmd.Flags().StringVar(&orderID, "order", "", "order id (generated when empty)")

	customerCmd.AddCommand(customerPutCmd, customerShowCmd)
	rootCmd.AddCommand(customerCmd, prefillCmd, submitCmd, customerUpdatedCmd, exportCmd)
}
