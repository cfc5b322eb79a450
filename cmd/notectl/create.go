package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	createTitle    string
	createContent  string
	createCategory int64
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var categoryID *int64
		if cmd.Flags().Changed("category-id") {
			categoryID = &createCategory
		}

		note, err := apiClient().CreateNote(context.Background(), createTitle, createContent, categoryID)
		if err != nil {
			fatal("Error creating note", err)
		}

		fmt.Printf("Created note %d: %s\n", note.ID, note.Title)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createTitle, "title", "", "Note title")
	createCmd.Flags().StringVar(&createContent, "content", "", "Note content (Markdown)")
	createCmd.Flags().Int64Var(&createCategory, "category-id", 0, "Category id to attach")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("content")
}
