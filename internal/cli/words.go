// internal/cli/words.go
//
// `wordle words`: describe the active word list.

package cli

import (
	"github.com/spf13/cobra"
)

type wordsInfo struct {
	Source  string `json:"source" yaml:"source"`
	Count   int    `json:"count" yaml:"count"`
	WordLen int    `json:"wordLen" yaml:"word_len"`
}

func (a *app) newWordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "Show the size and word length of the configured list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.loadList()
			if err != nil {
				return err
			}
			src := a.cfg.Words
			if src == "" {
				src = "embedded"
			}
			return renderWords(cmd.OutOrStdout(), a.cfg.Format, wordsInfo{
				Source: src, Count: list.Len(), WordLen: list.WordLen(),
			})
		},
	}
}
