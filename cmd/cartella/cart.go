package main

import (
	"fmt"
	"strconv"

	"github.com/cartella/internal/service"

	"github.com/spf13/cobra"
)

func newCartCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show cart items, count and total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary := app.container.CartService.Summary()
			out := cmd.OutOrStdout()
			for _, item := range summary.Items {
				p := item.CheckoutProduct.ProductDetails
				printf(out, "%d\tx%d\t%s\t%s\n", p.ID, item.Quantity, item.TotalAmount().String(), truncate(p.Title, 50))
			}
			printf(out, "items: %d\ntotal: %s\n", summary.Count, summary.TotalAmount.String())
			if summary.DefaultCardNumber != "" {
				printf(out, "default card: %s\n", summary.DefaultCardNumber)
			}
			return nil
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a cached product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			result, err := app.container.ProductService.AddToCart(id)
			if err != nil {
				return alertError(err)
			}
			printf(cmd.OutOrStdout(), "%s (%d item(s) in cart)\n", result.Message, result.CartCount)
			return nil
		},
	}

	qtyCmd := &cobra.Command{
		Use:   "qty <product-id> <quantity>",
		Short: "Set an item's quantity (0 removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			if !app.container.CartService.UpdateQuantity(id, qty) {
				return fmt.Errorf("%s: %s", service.TitleError, service.MsgItemNotInCart)
			}
			printf(cmd.OutOrStdout(), "updated\n")
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove an item from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			if err := app.container.CartService.Remove(id); err != nil {
				return alertError(err)
			}
			printf(cmd.OutOrStdout(), "removed\n")
			return nil
		},
	}

	var card service.CheckoutCard
	payCmd := &cobra.Command{
		Use:   "pay <product-id>",
		Short: "Check out a single cart item (no real payment is made)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			if err := app.container.CartService.PayForItem(id, card); err != nil {
				return alertError(err)
			}
			printf(cmd.OutOrStdout(), "paid\n")
			return nil
		},
	}
	payCmd.Flags().StringVar(&card.CardNumber, "card", "", "card number")
	payCmd.Flags().StringVar(&card.ExpirationDate, "exp", "", "expiration date")
	payCmd.Flags().StringVar(&card.CVV, "cvv", "", "card CVV")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.container.CartService.Clear(); err != nil {
				return alertError(err)
			}
			printf(cmd.OutOrStdout(), "cleared\n")
			return nil
		},
	}

	totalCmd := &cobra.Command{
		Use:   "total",
		Short: "Print the cart total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printf(cmd.OutOrStdout(), "%s\n", app.container.CartService.Total().String())
			return nil
		},
	}

	cmd.AddCommand(listCmd, addCmd, qtyCmd, removeCmd, payCmd, clearCmd, totalCmd)
	return cmd
}
