package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eximdesk/eximdesk-api/internal/client"
)

var (
	partySearch string
	partyType   string
)

var partyCmd = &cobra.Command{
	Use:   "party",
	Short: "Manage party master data",
}

var partyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List parties",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		result, err := c.ListParties(cmd.Context(), client.PartyListParams{
			Search: partySearch,
			Type:   partyType,
		})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tEMAIL\tGST NO")
		for _, p := range result.Items {
			email := ""
			if p.Email != nil {
				email = *p.Email
			}
			gst := ""
			if p.GstNumber != nil {
				gst = *p.GstNumber
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.PartyName, p.PartyType, email, gst)
		}
		return w.Flush()
	},
}

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage item categories",
}

var categorySearch string

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with their subcategories",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		categories, err := c.ListCategories(cmd.Context(), categorySearch)
		if err != nil {
			return err
		}

		for _, cat := range categories {
			names := make([]string, 0, len(cat.SubCategories))
			for _, sub := range cat.SubCategories {
				names = append(names, sub.Name)
			}
			fmt.Printf("%s  %s", cat.ID, cat.Name)
			if len(names) > 0 {
				fmt.Printf("  (%s)", strings.Join(names, ", "))
			}
			fmt.Println()
		}
		return nil
	},
}

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage item master data",
}

var (
	itemSearch   string
	itemCategory string
)

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List items",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		result, err := c.ListItems(cmd.Context(), client.ItemListParams{
			Search:     itemSearch,
			CategoryID: itemCategory,
		})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY")
		for _, it := range result.Items {
			category := ""
			if it.Category != nil {
				category = it.Category.Name
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", it.ID, it.ItemName, category)
		}
		return w.Flush()
	},
}

func init() {
	partyListCmd.Flags().StringVar(&partySearch, "search", "", "search by name, email or GST number")
	partyListCmd.Flags().StringVar(&partyType, "type", "", `filter by type ("Supplier" or "Buyer")`)
	partyCmd.AddCommand(partyListCmd)

	categoryListCmd.Flags().StringVar(&categorySearch, "search", "", "search by category name")
	categoryCmd.AddCommand(categoryListCmd)

	itemListCmd.Flags().StringVar(&itemSearch, "search", "", "search by item name or size")
	itemListCmd.Flags().StringVar(&itemCategory, "category", "", "filter by category id")
	itemCmd.AddCommand(itemListCmd)

	rootCmd.AddCommand(partyCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(itemCmd)
}
