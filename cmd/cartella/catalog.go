package main

import (
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the remote product catalog",
	}

	var category, query string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch the catalog, cache it locally and print matching products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.container.HomeService.FetchProducts(cmd.Context(), category, query)
			if err != nil {
				return alertError(err)
			}
			out := cmd.OutOrStdout()
			for _, p := range result.Products {
				printf(out, "%d\t%.2f\t%s\t%s\n", p.ID, p.Price, p.Category, truncate(p.Title, 60))
			}
			printf(out, "%d product(s)\n", len(result.Products))
			return nil
		},
	}
	listCmd.Flags().StringVar(&category, "category", "", "exact category label")
	listCmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive title search")

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "Print the catalog categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.container.HomeService.FetchProducts(cmd.Context(), "", "")
			if err != nil {
				return alertError(err)
			}
			for _, c := range result.Categories {
				printf(cmd.OutOrStdout(), "%s\n", c)
			}
			return nil
		},
	}

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Refresh the local product cache from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := app.container.HomeService.SyncCatalog(cmd.Context())
			if err != nil {
				return alertError(err)
			}
			printf(cmd.OutOrStdout(), "synced %d product(s)\n", saved)
			return nil
		},
	}

	cmd.AddCommand(listCmd, categoriesCmd, syncCmd)
	return cmd
}
