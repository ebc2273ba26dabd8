package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skavtech/ict-platform/internal/catalog/comparison"
	"github.com/skavtech/ict-platform/internal/catalog/domain"
)

func newCompareCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare products from a JSON file without a running service",
		Long:  "Reads a JSON array of products (as returned by GET /api/products) and prints the comparison.",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readFile(file)
			if err != nil {
				return fmt.Errorf("read products: %w", err)
			}

			var products []domain.Product
			if err := json.Unmarshal(data, &products); err != nil {
				return fmt.Errorf("parse products: %w", err)
			}

			result, err := comparison.Compare(products)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "products JSON file, - for stdin")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
