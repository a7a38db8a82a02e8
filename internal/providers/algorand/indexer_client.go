package algorand

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/feral-file/ff-algorand-indexer/internal/adapter"
	"github.com/feral-file/ff-algorand-indexer/internal/ratelimit"
)

const PROVIDER_NAME = "algorand-indexer"

// Headers maps header names to the values sent with every request
type Headers map[string]string

// IndexerClient defines the Algorand Indexer v2 REST operations to enable mocking
//
//go:generate mockgen -source=indexer_client.go -destination=../../mocks/algorand_indexer_client.go -package=mocks -mock_names=IndexerClient=MockIndexerClient
type IndexerClient interface {
	// Health returns nil when the indexer reports healthy
	Health(ctx context.Context) error

	// Accounts searches for accounts
	Accounts(ctx context.Context, query *QueryAccount) (*AccountResponse, error)

	// AccountInfo looks up one account
	AccountInfo(ctx context.Context, address Address, query *QueryAccountInfo) (*AccountInfoResponse, error)

	// AccountAssets lists the assets held by an account
	AccountAssets(ctx context.Context, address Address, query *QueryAccountAssetsInfo) (*AccountAssetsResponse, error)

	// AccountTransactions lists the transactions of an account
	AccountTransactions(ctx context.Context, address Address, query *QueryAccountTransaction) (*AccountTransactionResponse, error)

	// Applications searches for applications
	Applications(ctx context.Context, query *QueryApplications) (*ApplicationResponse, error)

	// ApplicationInfo looks up one application
	ApplicationInfo(ctx context.Context, id uint64, query *QueryApplicationInfo) (*ApplicationInfoResponse, error)

	// Assets searches for assets
	Assets(ctx context.Context, query *QueryAssets) (*AssetResponse, error)

	// AssetsInfo looks up one asset
	AssetsInfo(ctx context.Context, id uint64, query *QueryAssetsInfo) (*AssetsInfoResponse, error)

	// AssetBalances lists the accounts holding an asset
	AssetBalances(ctx context.Context, id uint64, query *QueryBalances) (*BalancesResponse, error)

	// AssetTransactions lists the transactions of an asset
	AssetTransactions(ctx context.Context, id uint64, query *QueryAssetTransaction) (*AssetTransactionResponse, error)

	// Block looks up a block by round
	Block(ctx context.Context, round Round) (*Block, error)

	// Transactions searches for transactions
	Transactions(ctx context.Context, query *QueryTransaction) (*TransactionResponse, error)

	// TransactionInfo looks up one transaction by id
	TransactionInfo(ctx context.Context, txID string) (*TransactionInfoResponse, error)
}

// indexerClient is the concrete implementation of IndexerClient
type indexerClient struct {
	baseURL        string
	headers        Headers
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	json           adapter.JSON
}

// NewIndexerClient creates a new Algorand indexer client.
// rateLimitProxy may be nil, in which case requests are sent directly.
func NewIndexerClient(baseURL string, headers Headers, httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, json adapter.JSON) (IndexerClient, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	hs, err := validateHeaders(headers)
	if err != nil {
		return nil, err
	}

	return &indexerClient{
		baseURL:        base,
		headers:        hs,
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		json:           json,
	}, nil
}

func (c *indexerClient) Health(ctx context.Context) error {
	endpoint := c.baseURL + "/health"
	if _, err := c.fetch(ctx, endpoint); err != nil {
		return err
	}
	return nil
}

func (c *indexerClient) Accounts(ctx context.Context, query *QueryAccount) (*AccountResponse, error) {
	return get[AccountResponse](ctx, c, "/v2/accounts", query)
}

func (c *indexerClient) AccountInfo(ctx context.Context, address Address, query *QueryAccountInfo) (*AccountInfoResponse, error) {
	return get[AccountInfoResponse](ctx, c, "/v2/accounts/"+address.String(), query)
}

func (c *indexerClient) AccountAssets(ctx context.Context, address Address, query *QueryAccountAssetsInfo) (*AccountAssetsResponse, error) {
	return get[AccountAssetsResponse](ctx, c, "/v2/accounts/"+address.String()+"/assets", query)
}

func (c *indexerClient) AccountTransactions(ctx context.Context, address Address, query *QueryAccountTransaction) (*AccountTransactionResponse, error) {
	return get[AccountTransactionResponse](ctx, c, "/v2/accounts/"+address.String()+"/transactions", query)
}

func (c *indexerClient) Applications(ctx context.Context, query *QueryApplications) (*ApplicationResponse, error) {
	return get[ApplicationResponse](ctx, c, "/v2/applications", query)
}

func (c *indexerClient) ApplicationInfo(ctx context.Context, id uint64, query *QueryApplicationInfo) (*ApplicationInfoResponse, error) {
	return get[ApplicationInfoResponse](ctx, c, "/v2/applications/"+strconv.FormatUint(id, 10), query)
}

func (c *indexerClient) Assets(ctx context.Context, query *QueryAssets) (*AssetResponse, error) {
	return get[AssetResponse](ctx, c, "/v2/assets", query)
}

func (c *indexerClient) AssetsInfo(ctx context.Context, id uint64, query *QueryAssetsInfo) (*AssetsInfoResponse, error) {
	return get[AssetsInfoResponse](ctx, c, "/v2/assets/"+strconv.FormatUint(id, 10), query)
}

func (c *indexerClient) AssetBalances(ctx context.Context, id uint64, query *QueryBalances) (*BalancesResponse, error) {
	return get[BalancesResponse](ctx, c, fmt.Sprintf("/v2/assets/%d/balances", id), query)
}

func (c *indexerClient) AssetTransactions(ctx context.Context, id uint64, query *QueryAssetTransaction) (*AssetTransactionResponse, error) {
	return get[AssetTransactionResponse](ctx, c, fmt.Sprintf("/v2/assets/%d/transactions", id), query)
}

func (c *indexerClient) Block(ctx context.Context, round Round) (*Block, error) {
	return get[Block](ctx, c, fmt.Sprintf("/v2/blocks/%d", round), nil)
}

func (c *indexerClient) Transactions(ctx context.Context, query *QueryTransaction) (*TransactionResponse, error) {
	return get[TransactionResponse](ctx, c, "/v2/transactions", query)
}

func (c *indexerClient) TransactionInfo(ctx context.Context, txID string) (*TransactionInfoResponse, error) {
	return get[TransactionInfoResponse](ctx, c, "/v2/transactions/"+url.PathEscape(txID), nil)
}

// get performs a GET on path with the encoded query and decodes the body into T
func get[T any](ctx context.Context, c *indexerClient, path string, query interface{}) (*T, error) {
	endpoint := c.baseURL + path
	values, err := encodeQuery(query)
	if err != nil {
		return nil, &RequestError{URL: endpoint, Message: err.Error(), Err: err}
	}
	if len(values) > 0 {
		endpoint += "?" + values.Encode()
	}

	body, err := c.fetch(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var result T
	if err := c.json.Unmarshal(body, &result); err != nil {
		return nil, &RequestError{
			URL:     endpoint,
			Message: "failed to decode response",
			Err:     fmt.Errorf("failed to decode response: %w", err),
		}
	}

	return &result, nil
}

// fetch sends the request through the rate limit proxy and maps failures to RequestError
func (c *indexerClient) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	body, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, endpoint, c.headers)
	})
	if err != nil {
		return nil, c.requestError(endpoint, err)
	}
	return body, nil
}

func (c *indexerClient) requestError(endpoint string, err error) error {
	var statusErr *adapter.HTTPStatusError
	if !errors.As(err, &statusErr) {
		return &RequestError{URL: endpoint, Message: err.Error(), Err: err}
	}

	message := strings.TrimSpace(string(statusErr.Body))
	var body indexerErrorBody
	if jsonErr := c.json.Unmarshal(statusErr.Body, &body); jsonErr == nil && body.Message != "" {
		message = body.Message
	}

	return &RequestError{
		URL:        endpoint,
		StatusCode: statusErr.StatusCode,
		Message:    message,
		Err:        err,
	}
}

func parseBaseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidURL, raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q: expected an absolute http(s) url", ErrInvalidURL, raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("%w: %q: query and fragment are not allowed", ErrInvalidURL, raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

func validateHeaders(headers Headers) (Headers, error) {
	hs := make(Headers, len(headers))
	for name, value := range headers {
		if !httpguts.ValidHeaderFieldName(name) {
			return nil, fmt.Errorf("%w: name %q", ErrInvalidHeader, name)
		}
		if !httpguts.ValidHeaderFieldValue(value) {
			return nil, fmt.Errorf("%w: value of %q", ErrInvalidHeader, name)
		}
		hs[name] = value
	}
	return hs, nil
}
