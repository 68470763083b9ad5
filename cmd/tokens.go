package cmd

import (
	"fmt"
	"os"

	"github.com/clems4ever/htmltree/tokenizer"
	"github.com/spf13/cobra"
)

// tokensCmd represents the tokens command
var tokensCmd = &cobra.Command{
	Use:   "tokens [html_file]",
	Short: "Print the raw token stream produced by tokenizing an HTML file",
	Long: `Tokens reads an HTML document and prints every token the tokenizer
emits, ahead of tree construction. Pass "-" or omit the argument to read from
stdin. Intended for debugging the state machine, not as a stable interface.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		body, err := readInput(args)
		if err != nil {
			fmt.Printf("Error reading input: %v\n", err)
			os.Exit(1)
		}

		toks := tokenizer.Tokens(body)
		fmt.Printf("Tokens (%d):\n", len(toks))
		for _, tok := range toks {
			fmt.Printf("  %s\n", tok.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
