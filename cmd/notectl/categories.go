package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		categories, err := apiClient().ListCategories(context.Background())
		if err != nil {
			fatal("Error listing categories", err)
		}

		if len(categories) == 0 {
			fmt.Println("No categories yet.")
			return
		}
		for _, category := range categories {
			fmt.Printf("%d\t%s\n", category.ID, category.Name)
		}
	},
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		category, err := apiClient().CreateCategory(context.Background(), args[0])
		if err != nil {
			fatal("Error creating category", err)
		}

		fmt.Printf("Created category %d: %s\n", category.ID, category.Name)
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesAddCmd)
}
