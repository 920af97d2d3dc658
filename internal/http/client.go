package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/xcqa/xcqa-query-relayer/internal/relay"
	"github.com/xcqa/xcqa-query-relayer/internal/webserver"
)

const getTimeout = time.Second * 5

// RelayerClient provides high level methods to work with the relayer
// webserver api
type RelayerClient struct {
	host   *url.URL
	client http.Client
}

// NewRelayerClient takes a host as a single argument and returns a RelayerClient in case of well formatted host arg
// host format is <scheme>://<host>[:<port>], e.g. http://myrelayer.host, https://myrelayer.host, http://myrelayer.host:8080
func NewRelayerClient(host string) (*RelayerClient, error) {
	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("host parsing error: %w", err)
	}

	u.Path = ""
	u.RawQuery = ""
	return &RelayerClient{
		host: u,
		client: http.Client{
			Timeout: getTimeout,
		},
	}, nil
}

func (c RelayerClient) GetUnsuccessfulTxs() ([]relay.UnsuccessfulTxInfo, error) {
	u := *c.host
	u.Path = webserver.UnsuccessfulTxsResource

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build http request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make http request: %w", err)
	}

	if res.StatusCode != 200 {
		return nil, fmt.Errorf("got unexpected http response status code: %d", res.StatusCode)
	}
	txs := make([]relay.UnsuccessfulTxInfo, 0)

	decoder := json.NewDecoder(res.Body)
	err = decoder.Decode(&txs)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	return txs, nil
}
