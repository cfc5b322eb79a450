package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	updateTitle         string
	updateContent       string
	updateCategory      int64
	updateClearCategory bool
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a note; only the supplied fields change",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal("Invalid note id", err)
		}

		fields := map[string]any{}
		if cmd.Flags().Changed("title") {
			fields["title"] = updateTitle
		}
		if cmd.Flags().Changed("content") {
			fields["content"] = updateContent
		}
		if updateClearCategory {
			fields["categoryId"] = nil
		} else if cmd.Flags().Changed("category-id") {
			fields["categoryId"] = updateCategory
		}

		note, err := apiClient().UpdateNote(context.Background(), id, fields)
		if err != nil {
			fatal("Error updating note", err)
		}

		fmt.Printf("Updated note %d: %s\n", note.ID, note.Title)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVar(&updateContent, "content", "", "New content (Markdown)")
	updateCmd.Flags().Int64Var(&updateCategory, "category-id", 0, "New category id")
	updateCmd.Flags().BoolVar(&updateClearCategory, "clear-category", false, "Detach the note from its category")
}
