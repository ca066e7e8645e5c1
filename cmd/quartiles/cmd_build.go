package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/quartiles/internal/dictionary"
)

const minDictWordLength = 3

// newBuildCmd converts a curated word list into the binary dictionary
// artifact the engine loads at startup. Input format: one entry per
// line, "WORD<TAB>definition" with the definition optional. Corpus
// curation (frequency filtering, profanity removal, WordNet enrichment)
// happens upstream of this tool.
func newBuildCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "build <wordlist>",
		Short: "Build the dictionary artifact from a word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			trie := dictionary.New()
			skipped := 0
			sc := bufio.NewScanner(f)
			sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for sc.Scan() {
				word, def, _ := strings.Cut(sc.Text(), "\t")
				word = strings.TrimSpace(word)
				if !eligible(word) {
					skipped++
					continue
				}
				trie.Add(word, strings.TrimSpace(def))
			}
			if err := sc.Err(); err != nil {
				return err
			}
			if err := trie.Save(output); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			logger.Info("dictionary built", "words", trie.Len(), "skipped", skipped, "output", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "data/dictionary.bin", "artifact path")
	return cmd
}

func eligible(word string) bool {
	if len(word) < minDictWordLength {
		return false
	}
	for _, r := range word {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
