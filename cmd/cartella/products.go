package main

import (
	"fmt"
	"strconv"

	"github.com/cartella/internal/models"
	"github.com/cartella/internal/service"

	"github.com/spf13/cobra"
)

func parseProductID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", raw)
	}
	return id, nil
}

func printProducts(cmd *cobra.Command, products []models.Product) {
	out := cmd.OutOrStdout()
	for _, p := range products {
		mark := " "
		if p.IsFavourite {
			mark = "*"
		}
		printf(out, "%s %d\t%.2f\t%s\t%s\n", mark, p.ID, p.Price, p.Category, truncate(p.Title, 60))
	}
}

func newProductsCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Work with the locally cached products",
	}

	var input service.ProductListInput
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List cached products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, total := app.container.ProductService.List(input)
			printProducts(cmd, items)
			printf(cmd.OutOrStdout(), "%d of %d product(s)\n", len(items), total)
			return nil
		},
	}
	listCmd.Flags().StringVar(&input.Category, "category", "", "exact category label")
	listCmd.Flags().StringVarP(&input.Query, "query", "q", "", "case-insensitive title search")
	listCmd.Flags().BoolVar(&input.OnlyFavourite, "favourites", false, "only favourites")
	listCmd.Flags().IntVar(&input.Page, "page", 1, "page number")
	listCmd.Flags().IntVar(&input.PageSize, "page-size", 20, "page size")

	favouritesCmd := &cobra.Command{
		Use:   "favourites",
		Short: "List favourite products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printProducts(cmd, app.container.ProductService.Favourites())
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a cached product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			detail, err := app.container.ProductService.Get(id)
			if err != nil {
				return alertError(err)
			}
			p := detail.Product
			out := cmd.OutOrStdout()
			printf(out, "%s\n", p.Title)
			printf(out, "price: %.2f\ncategory: %s\nrating: %.1f (%d)\n", p.Price, p.Category, p.Rating, p.RatingCount)
			printf(out, "favourite: %t\nin cart: %t\n", p.IsFavourite, detail.InCart)
			return nil
		},
	}

	setFavourite := func(use, short string, value bool) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseProductID(args[0])
				if err != nil {
					return err
				}
				p, err := app.container.ProductService.SetFavourite(id, value)
				if err != nil {
					return alertError(err)
				}
				printf(cmd.OutOrStdout(), "%d favourite=%t\n", p.ID, p.IsFavourite)
				return nil
			},
		}
	}

	cmd.AddCommand(
		listCmd,
		favouritesCmd,
		showCmd,
		setFavourite("favourite", "Mark a product as favourite", true),
		setFavourite("unfavourite", "Remove a product from favourites", false),
	)
	return cmd
}
