package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "htmltree",
	Short: "An HTML tokenizer and tree builder",
	Long: `htmltree tokenizes an HTML document following the spirit of the
WHATWG HTML parsing algorithm's tokenization phase and builds a simplified
document tree suitable for downstream transformation/templating use.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
