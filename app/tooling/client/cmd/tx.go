package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var txCmd = &cobra.Command{
	Use:   "tx <text>",
	Short: "Submit a new transaction to the node.",
	Args:  cobra.ExactArgs(1),
	Run:   txRun,
}

func init() {
	rootCmd.AddCommand(txCmd)
}

func txRun(cmd *cobra.Command, args []string) {
	payload := struct {
		Data string `json:"data"`
	}{
		Data: args[0],
	}

	data, err := json.Marshal(payload)
	if err != nil {
		fatal(err)
	}

	resp, err := http.Post(fmt.Sprintf("%s/v1/tx", url), "application/json", bytes.NewReader(data))
	if err != nil {
		fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Println("node rejected transaction:", resp.Status)
		return
	}

	fmt.Println("transaction queued")
}
