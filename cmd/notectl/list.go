package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	listJSON     bool
	listSearch   string
	listCategory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, optionally filtered by category and search term",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		ctl := controller()

		if err := ctl.Load(ctx); err != nil {
			fatal("Error loading notes", err)
		}

		ctl.SetSearch(listSearch)
		if listCategory != "" {
			matched := false
			for _, category := range ctl.Categories() {
				if category.Name == listCategory {
					id := category.ID
					ctl.SetCategoryFilter(&id)
					matched = true
					break
				}
			}
			if !matched {
				fmt.Fprintf(os.Stderr, "Unknown category: %s\n", listCategory)
				os.Exit(1)
			}
		}

		visible := ctl.Visible()

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(visible); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		if len(visible) == 0 {
			fmt.Println("No notes found.")
			return
		}

		for _, note := range visible {
			label := ""
			if note.Category != nil {
				label = " [" + note.Category.Name + "]"
			}
			fmt.Printf("%d\t%s%s\t(updated %s)\n", note.ID, note.Title, label,
				note.UpdatedAt.Format("2006-01-02 15:04"))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter notes whose title or content contains the term")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter notes by category name")
}
