package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	relayerhttp "github.com/xcqa/xcqa-query-relayer/internal/http"
)

var webserverURL string

const (
	UrlFlagName = "url"
)

// QueryCmd represents the query command
var QueryCmd = &cobra.Command{
	Use: "query",
}

func init() {
	QueryCmd.PersistentFlags().StringVarP(&webserverURL, UrlFlagName, "u", "http://localhost:9998", "server url")
	QueryCmd.AddCommand(UnsuccessfulTxs)
	RootCmd.AddCommand(QueryCmd)
}

// UnsuccessfulTxs represents the unsuccessful-txs command
var UnsuccessfulTxs = &cobra.Command{
	Use:   "unsuccessful-txs",
	Short: "Query unsuccessfully processed transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := cmd.Flags().GetString(UrlFlagName)
		if err != nil {
			return err
		}

		client, err := relayerhttp.NewRelayerClient(url)
		if err != nil {
			return fmt.Errorf("failed to get new relayer client: %w", err)
		}

		txs, err := client.GetUnsuccessfulTxs()
		if err != nil {
			return fmt.Errorf("failed to get unsuccessful txs: %w", err)
		}

		var response bytes.Buffer
		encoder := json.NewEncoder(&response)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(txs)
		if err != nil {
			return fmt.Errorf("failed to encode unsuccessful txs: %w", err)
		}

		fmt.Printf("Unsuccessful txs:\n%s\n", response.String())

		return nil
	},
}
