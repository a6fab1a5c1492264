package main

import (
	"fmt"

	"photo_studio/internal/domain/pricing"

	"github.com/spf13/cobra"
)

func catalogCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List packages, locations and spec codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.service().GetCatalog(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get catalog: %w", err)
			}
			out := cmd.OutOrStdout()
			if opts.json {
				return printJSON(out, catalog)
			}

			fmt.Fprintln(out, catalog.StudioName)
			fmt.Fprintln(out, "Packages:")
			for _, p := range catalog.ProductPackages {
				fmt.Fprintf(out, "  %-10s %8s  %d prints  %s\n", p.ID, pricing.FormatPrice(p.PriceCents, p.Currency), p.PrintedPhotoNumber, p.Name)
			}
			currency := "usd"
			if len(catalog.ProductPackages) > 0 {
				currency = catalog.ProductPackages[0].Currency
			}
			fmt.Fprintf(out, "Additional prints: %s each\n", pricing.FormatPrice(catalog.PerAdditionalPhotoPriceInCent, currency))
			if len(catalog.BusinessLocations) > 0 {
				fmt.Fprintln(out, "Locations:")
				for _, l := range catalog.BusinessLocations {
					fmt.Fprintf(out, "  %s, %s\n", l.Name, l.Address)
				}
			}
			if len(catalog.DefaultSpecCodes) > 0 {
				fmt.Fprintf(out, "Spec codes: %v\n", catalog.DefaultSpecCodes)
			}
			return nil
		},
	}
}

func quoteCmd(opts *rootOptions) *cobra.Command {
	var (
		packageID  string
		additional int
	)
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a package with additional prints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := opts.service().Quote(cmd.Context(), packageID, additional)
			if err != nil {
				return fmt.Errorf("failed to get quote: %w", describe(err))
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), q)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s with %d prints: %s\n", q.PackageID, q.TotalPhotoNumber, q.FormattedTotal)
			return nil
		},
	}

	cmd.Flags().StringVarP(&packageID, "package", "p", "", "package id")
	cmd.Flags().IntVarP(&additional, "additional", "a", 0, "additional prints")
	_ = cmd.MarkFlagRequired("package")

	return cmd
}
