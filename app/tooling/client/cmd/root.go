// Package cmd contains the node client app.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var url string

var rootCmd = &cobra.Command{
	Use:   "client",
	Short: "Client for talking to a node's v1 API",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&url, "url", "u", "http://localhost:8080", "URL of the node's API host.")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func fatal(err error) {
	log.Fatal(err)
}
