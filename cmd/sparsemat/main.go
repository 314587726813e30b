// Command sparsemat is a calculator for sparse matrices in the plain-text
// coordinate format. With no flags it runs an interactive session; with
// --left/--op/--out (plus --right for binary operations) it performs a
// single operation and exits.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsemat/cli"
)

var (
	leftPath  string
	rightPath string
	opCode    string
	outPath   string
	factor    int64
)

var rootCmd = &cobra.Command{
	Use:   "sparsemat",
	Short: "Sparse coordinate matrix calculator",
	Long: `sparsemat loads matrices stored in the plain-text coordinate format

  rows=<n>
  cols=<n>
  (<row>, <col>, <value>)

applies an arithmetic operation and saves the result in the same format.

Run without flags for an interactive session, or pass --left, --op and
--out (plus --right for a/b/c) for a one-shot run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if leftPath == "" && rightPath == "" && opCode == "" && outPath == "" {
			return cli.Run(cmd.InOrStdin(), cmd.OutOrStdout())
		}

		return cli.Once(leftPath, rightPath, opCode, outPath, factor, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().StringVar(&leftPath, "left", "", "path to the first matrix file")
	rootCmd.Flags().StringVar(&rightPath, "right", "", "path to the second matrix file")
	rootCmd.Flags().StringVar(&opCode, "op", "",
		"operation code: a=addition, b=subtraction, c=multiplication, t=transpose, s=scale")
	rootCmd.Flags().StringVar(&outPath, "out", "", "destination file for the result")
	rootCmd.Flags().Int64Var(&factor, "factor", 1, "integer factor for --op s")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
