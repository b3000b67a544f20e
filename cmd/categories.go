package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/quality-care/careview/internal/model"
)

var categoriesFormat string

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the fixed complaint categories and company types",
	RunE: func(cmd *cobra.Command, _ []string) error {
		switch categoriesFormat {
		case "table":
			fmt.Println("Complaint categories (presentation order):")
			for i, c := range model.Categories {
				fmt.Printf("  %d. %s\n", i+1, c)
			}
			fmt.Println("\nCompany types:")
			for _, t := range model.CompanyTypes {
				fmt.Printf("  - %s\n", t)
			}
			return nil
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Categories   []model.Category    `json:"categories"`
				CompanyTypes []model.CompanyType `json:"company_types"`
			}{model.Categories, model.CompanyTypes})
		default:
			return eris.Errorf("categories: unknown format %q (want table or json)", categoriesFormat)
		}
	},
}

func init() {
	categoriesCmd.Flags().StringVar(&categoriesFormat, "format", "table", "output format: table or json")
	rootCmd.AddCommand(categoriesCmd)
}
