// Command suftreectl is a thin CLI driver around package suftree, kept
// separate from the library so the core stays a pure, dependency-light
// computation and the command-line concerns (flags, file/stdin reading,
// output formatting) live on their own.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/suftree"
)

var inputPath string

func newScoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Print max(|w|*occ(w)) and node count for each input line",
		RunE:  runScore,
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "file to read lines from (default: stdin)")

	return cmd
}

func runScore(cmd *cobra.Command, _ []string) error {
	in := cmd.InOrStdin()
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("suftreectl: open %q: %w", inputPath, err)
		}
		defer f.Close()
		in = f
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)

	out := cmd.OutOrStdout()
	for scanner.Scan() {
		line := scanner.Text()
		maxScore, nodeCount, err := suftree.MaxSubstringScore([]byte(line))
		if err != nil {
			fmt.Fprintf(out, "%q -> error: %v\n", line, err)

			continue
		}
		fmt.Fprintf(out, "%q -> (max_score=%d, node_count=%d)\n", line, maxScore, nodeCount)
	}

	return scanner.Err()
}

func main() {
	root := &cobra.Command{Use: "suftreectl"}
	root.AddCommand(newScoreCommand())

	if err := root.Execute(); err != nil {
		log.Fatalf("suftreectl: %v", err)
	}
}
