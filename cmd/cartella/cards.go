package main

import (
	"github.com/cartella/internal/service"

	"github.com/spf13/cobra"
)

func newCardsCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Manage saved payment cards (requires a logged-in user)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.open(); err != nil {
				return err
			}
			if _, err := app.container.ProfileService.CurrentUser(); err != nil {
				return alertError(err)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, c := range app.container.ProfileService.Cards() {
				mark := " "
				if c.IsDefault {
					mark = "*"
				}
				printf(out, "%s %s\t%s\t%s\t%s\t%s\n", mark, c.ID, c.DisplayType, c.MaskedNumber, c.ExpiryDate, c.CardholderName)
			}
			return nil
		},
	}

	var input service.CardInput
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Save a card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := app.container.ProfileService.AddCard(input)
			if err != nil {
				return alertError(err)
			}
			printf(cmd.OutOrStdout(), "saved %s %s (%s)\n", card.DisplayType, card.MaskedNumber, card.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&input.CardNumber, "number", "", "card number")
	addCmd.Flags().StringVar(&input.CardType, "type", "", "card type (detected from the number when empty)")
	addCmd.Flags().StringVar(&input.ExpiryDate, "expiry", "", "expiry date")
	addCmd.Flags().StringVar(&input.CVV, "cvv", "", "CVV")
	addCmd.Flags().StringVar(&input.CardholderName, "name", "", "cardholder name")

	defaultCmd := &cobra.Command{
		Use:   "default <card-id>",
		Short: "Make a card the default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.container.ProfileService.SetDefaultCard(args[0]); err != nil {
				return alertError(err)
			}
			printf(cmd.OutOrStdout(), "default card set\n")
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <card-id>",
		Short: "Delete a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.container.ProfileService.DeleteCard(args[0]); err != nil {
				return alertError(err)
			}
			printf(cmd.OutOrStdout(), "card deleted\n")
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every saved card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.container.ProfileService.ClearCards(); err != nil {
				return alertError(err)
			}
			printf(cmd.OutOrStdout(), "cards cleared\n")
			return nil
		},
	}

	cmd.AddCommand(listCmd, addCmd, defaultCmd, deleteCmd, clearCmd)
	return cmd
}
