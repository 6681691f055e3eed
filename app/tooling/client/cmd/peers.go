package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

type peerView struct {
	ID string `json:"ID"`
}

var peersCmd = &cobra.Command{
	Use:   "peers",
	Short: "Print the node's known peers.",
	Run:   peersRun,
}

func init() {
	rootCmd.AddCommand(peersCmd)
}

func peersRun(cmd *cobra.Command, args []string) {
	resp, err := http.Get(fmt.Sprintf("%s/v1/peers", url))
	if err != nil {
		fatal(err)
	}
	defer resp.Body.Close()

	var peers []peerView
	if err := json.NewDecoder(resp.Body).Decode(&peers); err != nil {
		fatal(err)
	}

	if len(peers) == 0 {
		fmt.Println("no known peers")
		return
	}

	for _, p := range peers {
		fmt.Println(p.ID)
	}
}
