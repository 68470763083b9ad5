package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/clems4ever/htmltree/tokenizer"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [html_file]",
	Short: "Parse an HTML file and print its document tree",
	Long: `Parse reads an HTML document, tokenizes it, and runs it through the
tree-construction phase, printing the resulting tree. Pass "-" or omit the
argument to read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		body, err := readInput(args)
		if err != nil {
			fmt.Printf("Error reading input: %v\n", err)
			os.Exit(1)
		}

		root := tokenizer.Parse(body)
		fmt.Println(root.String())
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}
