package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eximdesk/eximdesk-api/internal/client"
	"github.com/eximdesk/eximdesk-api/internal/download"
	"github.com/eximdesk/eximdesk-api/internal/draft"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Manage invoices",
}

var (
	listPage   int
	listSize   int
	listSearch string
	listType   string
)

var invoiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		result, err := c.ListInvoices(cmd.Context(), client.InvoiceListParams{
			Page:   listPage,
			Size:   listSize,
			Search: listSearch,
			Type:   listType,
		})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tINVOICE NO\tTYPE\tDATE\tBILL TO\tTOTAL (INR)")
		for _, inv := range result.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.2f\n",
				inv.ID, inv.InvoiceNo, inv.InvoiceType.Label(),
				inv.InvoiceDate.Format("2006-01-02"), inv.BillToName, inv.TotalInr)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if result.Pagination != nil {
			fmt.Printf("\nPage %d of %d (%d invoices)\n",
				result.Pagination.CurrentPage, result.Pagination.TotalPages, result.Pagination.Total)
		}
		return nil
	},
}

var invoiceShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one invoice with its items and packing details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		inv, err := c.GetInvoice(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		encoded, err := json.MarshalIndent(inv, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	},
}

var createFile string

var invoiceCreateCmd = &cobra.Command{
	Use:   "create --file <form.json>",
	Short: "Create an invoice from a form file",
	Long: `Create an invoice from a JSON form file. The file uses the same
field names as the invoice form; all values are strings and numeric
fields are parsed leniently (blank or malformed values become zero).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(createFile)
		if err != nil {
			return err
		}

		d := draft.New(draft.ModeCreate)
		if err := json.Unmarshal(data, d); err != nil {
			return fmt.Errorf("parse form file: %w", err)
		}

		payload, warnings := draft.ToPayload(d)
		for _, warning := range warnings {
			printErr("warning: %s", warning)
		}

		c, err := newClient()
		if err != nil {
			return err
		}

		inv, err := c.CreateInvoice(cmd.Context(), payload)
		if err != nil {
			return err
		}

		fmt.Printf("Created invoice %s (%s)\n", inv.InvoiceNo, inv.ID)
		return nil
	},
}

var updateFile string

var invoiceUpdateCmd = &cobra.Command{
	Use:   "update <id> --file <form.json>",
	Short: "Update an invoice from a form file",
	Long: `Update an invoice. The current record is fetched and loaded into the
form first, so the form file only needs the fields that change; items and
packing details are replaced as a whole when present in the file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(updateFile)
		if err != nil {
			return err
		}

		c, err := newClient()
		if err != nil {
			return err
		}

		inv, err := c.GetInvoice(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		d := draft.FromInvoice(inv, draft.ModeEdit)
		if err := json.Unmarshal(data, d); err != nil {
			return fmt.Errorf("parse form file: %w", err)
		}

		payload, warnings := draft.ToPayload(d)
		for _, warning := range warnings {
			printErr("warning: %s", warning)
		}

		updated, err := c.UpdateInvoice(cmd.Context(), args[0], payload)
		if err != nil {
			return err
		}

		fmt.Printf("Updated invoice %s (%s)\n", updated.InvoiceNo, updated.ID)
		return nil
	},
}

var deleteYes bool

var invoiceDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !deleteYes {
			return fmt.Errorf("refusing to delete without --yes")
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		if err := c.DeleteInvoice(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted")
		return nil
	},
}

var downloadDir string

var invoiceDownloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Download the export invoice, commercial invoice and packing list PDFs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		inv, err := c.GetInvoice(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		dl := download.New(c.DownloadDocument, func(filename string, data []byte) error {
			return os.WriteFile(filepath.Join(downloadDir, filename), data, 0o644)
		})

		summary, err := dl.DownloadAll(cmd.Context(), args[0], inv.InvoiceNo)
		if err != nil {
			return err
		}

		for _, r := range summary.Results {
			if r.Err != nil {
				printErr("failed: %s: %v", r.Filename, r.Err)
				continue
			}
			fmt.Printf("saved %s\n", filepath.Join(downloadDir, r.Filename))
		}

		if !summary.AllSucceeded() {
			return fmt.Errorf("%d of %d documents failed", len(summary.Failed()), len(summary.Results))
		}
		return nil
	},
}

func init() {
	invoiceListCmd.Flags().IntVar(&listPage, "page", 1, "page number")
	invoiceListCmd.Flags().IntVar(&listSize, "size", 15, "page size")
	invoiceListCmd.Flags().StringVar(&listSearch, "search", "", "search by invoice number or party name")
	invoiceListCmd.Flags().StringVar(&listType, "type", "", `filter by type ("Export", "Commercial", "Packing List")`)

	invoiceCreateCmd.Flags().StringVarP(&createFile, "file", "f", "", "form file (JSON)")
	_ = invoiceCreateCmd.MarkFlagRequired("file")

	invoiceUpdateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "form file (JSON)")
	_ = invoiceUpdateCmd.MarkFlagRequired("file")

	invoiceDeleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "confirm deletion")

	invoiceDownloadCmd.Flags().StringVarP(&downloadDir, "dir", "d", ".", "directory to save the PDFs in")

	invoiceCmd.AddCommand(invoiceListCmd)
	invoiceCmd.AddCommand(invoiceShowCmd)
	invoiceCmd.AddCommand(invoiceCreateCmd)
	invoiceCmd.AddCommand(invoiceUpdateCmd)
	invoiceCmd.AddCommand(invoiceDeleteCmd)
	invoiceCmd.AddCommand(invoiceDownloadCmd)

	rootCmd.AddCommand(invoiceCmd)
}
