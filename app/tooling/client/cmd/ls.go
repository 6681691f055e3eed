package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

type blockView struct {
	ID    uint64 `json:"id"`
	Data  string `json:"data"`
	Prev  string `json:"prev"`
	Nonce uint64 `json:"nonce"`
	Hash  string `json:"hash"`
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Print the node's current chain.",
	Run:   lsRun,
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

func lsRun(cmd *cobra.Command, args []string) {
	resp, err := http.Get(fmt.Sprintf("%s/v1/chain", url))
	if err != nil {
		fatal(err)
	}
	defer resp.Body.Close()

	var blocks []blockView
	if err := json.NewDecoder(resp.Body).Decode(&blocks); err != nil {
		fatal(err)
	}

	for _, b := range blocks {
		fmt.Printf("id[%d] data[%s] prev[%s] nonce[%d] hash[%s]\n", b.ID, b.Data, b.Prev, b.Nonce, b.Hash)
	}
}
