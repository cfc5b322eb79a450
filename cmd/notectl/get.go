package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/spf13/cobra"
)

var getHTML bool

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal("Invalid note id", err)
		}

		note, err := apiClient().GetNote(context.Background(), id)
		if err != nil {
			fatal("Error getting note", err)
		}

		fmt.Printf("# %s\n", note.Title)
		if note.Category != nil {
			fmt.Printf("Category: %s\n", note.Category.Name)
		}
		fmt.Printf("Updated: %s\n\n", note.UpdatedAt.Format("2006-01-02 15:04"))

		if getHTML {
			fmt.Println(string(renderMarkdown(note.Content)))
			return
		}
		fmt.Println(note.Content)
	},
}

// renderMarkdown turns note content into HTML.
func renderMarkdown(content string) []byte {
	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.HardLineBreak
	p := parser.NewWithExtensions(extensions)

	return markdown.ToHTML([]byte(content), p, renderer)
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&getHTML, "html", false, "Render Markdown content as HTML")
}
