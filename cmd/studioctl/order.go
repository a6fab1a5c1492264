package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"photo_studio/internal/client"
	"photo_studio/internal/config"
	"photo_studio/internal/domain/entities"
	"photo_studio/internal/domain/pricing"
	"photo_studio/internal/infrastructure/payments"

	"github.com/spf13/cobra"
)

var ErrLiveKeyConfirmation = errors.New("server-side confirmation needs PAYMENT_GATEWAY_MOCK or an sk_test_ key")

func orderCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Create and inspect photo orders",
	}
	cmd.AddCommand(orderCreateCmd(opts))
	cmd.AddCommand(orderGetCmd(opts))
	return cmd
}

func orderCreateCmd(opts *rootOptions) *cobra.Command {
	var (
		specCode      string
		imagePath     string
		packageID     string
		additional    int
		paymentMethod string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Upload a photo, open a payment intent and optionally pay it",
		Long: `Upload a photo for a spec code and open a payment intent for the
selected package. With --payment-method the intent is confirmed from this
machine, which only mock mode or a Stripe test key allows.

Examples:
  studioctl order create --spec us-passport --image face.jpg --package standard
  studioctl order create --spec us-passport --image face.jpg --package basic -a 2 --payment-method pm_card_visa`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			image, err := os.ReadFile(imagePath)
			if err != nil {
				return fmt.Errorf("failed to read image: %w", err)
			}

			svc := opts.service()
			orders := client.NewOrderRepository(svc)
			order, err := orders.CreateOrder(ctx, specCode, image)
			if err != nil {
				return fmt.Errorf("failed to create order: %w", describe(err))
			}
			fmt.Fprintf(out, "order %s created, preview %s\n", order.OrderID, order.PreviewImageURL)
			for _, issue := range order.Issues {
				fmt.Fprintf(out, "  issue: %s\n", entities.IssueMessage(issue))
			}

			session := client.NewCheckoutSession(svc)
			session.SetOrder(order.OrderID)
			session.SetProcessorReady(true)
			form, _, err := session.Update(ctx, packageID, additional)
			if err != nil {
				return fmt.Errorf("failed to create payment intent: %w", describe(err))
			}
			fmt.Fprintf(out, "payment intent %s for %s\n", form.PaymentIntentID, pricing.FormatPrice(form.Amount, form.Currency))

			if paymentMethod == "" {
				if opts.json {
					return printJSON(out, order)
				}
				return nil
			}

			confirmer, err := newConfirmer(opts.envFile)
			if err != nil {
				return err
			}
			redirect, err := client.Confirm(ctx, confirmer, form, paymentMethod, "")
			if err != nil {
				return fmt.Errorf("payment failed: %w", err)
			}
			intentID, err := client.PaymentIntentFromRedirect(redirect)
			if err != nil {
				return err
			}

			paid, err := orders.GetOrder(ctx, order.OrderID, intentID)
			if err != nil {
				return fmt.Errorf("failed to get order: %w", describe(err))
			}
			return printOrder(cmd, opts, paid)
		},
	}

	cmd.Flags().StringVarP(&specCode, "spec", "s", "", "photo spec code, e.g. us-passport")
	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "path to the photo")
	cmd.Flags().StringVarP(&packageID, "package", "p", "", "package id")
	cmd.Flags().IntVarP(&additional, "additional", "a", 0, "additional prints")
	cmd.Flags().StringVar(&paymentMethod, "payment-method", "", "confirm with this test payment method, e.g. pm_card_visa")
	_ = cmd.MarkFlagRequired("spec")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("package")

	return cmd
}

func orderGetCmd(opts *rootOptions) *cobra.Command {
	var orderID, paymentIntentID string
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Reconcile an order with its payment intent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := client.NewOrderRepository(opts.service()).GetOrder(cmd.Context(), orderID, paymentIntentID)
			if err != nil {
				return fmt.Errorf("failed to get order: %w", describe(err))
			}
			return printOrder(cmd, opts, order)
		},
	}

	cmd.Flags().StringVarP(&orderID, "order", "o", "", "order id (photo uuid)")
	cmd.Flags().StringVar(&paymentIntentID, "payment-intent", "", "payment intent id")
	_ = cmd.MarkFlagRequired("order")
	_ = cmd.MarkFlagRequired("payment-intent")

	return cmd
}

// newConfirmer builds a processor client from the env file. Live keys are
// refused: real payments are confirmed by the customer's browser.
func newConfirmer(envFile string) (client.PaymentConfirmer, error) {
	cfg, err := config.LoadFile(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Payment.Mock && (cfg.Payment.Provider != config.ProviderStripe || !strings.HasPrefix(cfg.Payment.StripeSecretKey, "sk_test_")) {
		return nil, ErrLiveKeyConfirmation
	}
	gateway, err := payments.NewGateway(cfg)
	if err != nil {
		return nil, err
	}
	confirmer, ok := gateway.(payments.PaymentConfirmer)
	if !ok {
		return nil, ErrLiveKeyConfirmation
	}
	return confirmer, nil
}

func printOrder(cmd *cobra.Command, opts *rootOptions, order entities.PhotoOrder) error {
	out := cmd.OutOrStdout()
	if opts.json {
		return printJSON(out, order)
	}
	fmt.Fprintf(out, "order %s: %s\n", order.OrderID, order.Status.Label())
	if order.CustomerMessage != "" {
		fmt.Fprintf(out, "  %s\n", order.CustomerMessage)
	}
	if order.FinalImageURL != "" {
		fmt.Fprintf(out, "  photo: %s\n", order.FinalImageURL)
	}
	if order.AmountInCents > 0 {
		fmt.Fprintf(out, "  paid: %s\n", pricing.FormatPrice(order.AmountInCents, order.Currency))
	}
	return nil
}

// describe adds the server's envelope message to HTTP errors.
func describe(err error) error {
	if httpErr, ok := client.AsHTTPError(err); ok && httpErr.Body.Error != "" {
		return fmt.Errorf("%w: %s", err, httpErr.Body.Error)
	}
	return err
}
