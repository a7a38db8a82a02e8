// Package indexer is a typed facade over the Algorand Indexer v2 client.
//
// Every method forwards exactly one call to the underlying client and returns
// its result unchanged. Failures are converted into *Error at a single point;
// there is no retry, caching or logging at this layer. Cross-cutting behavior
// belongs in the client's transport (adapter.HTTPClient) or in the rate limit
// proxy handed to it.
package indexer

import (
	"context"
	"time"

	"github.com/feral-file/ff-algorand-indexer/internal/adapter"
	"github.com/feral-file/ff-algorand-indexer/internal/providers/algorand"
	"github.com/feral-file/ff-algorand-indexer/internal/ratelimit"
)

// DefaultTimeout bounds a single request when no HTTP client is supplied
const DefaultTimeout = 30 * time.Second

// Indexer is safe for concurrent use; it holds nothing but the client handle
type Indexer struct {
	client algorand.IndexerClient
}

type options struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	timeout        time.Duration
}

// Option customizes how New and NewWithHeaders build the client
type Option func(*options)

// WithHTTPClient replaces the default transport
func WithHTTPClient(httpClient adapter.HTTPClient) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// WithRateLimitProxy routes every request through p
func WithRateLimitProxy(p ratelimit.Proxy) Option {
	return func(o *options) {
		o.rateLimitProxy = p
	}
}

// WithTimeout sets the per request timeout of the default transport.
// It has no effect together with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// New builds an indexer facade for baseURL.
//
// Returns a construction error matching ErrInvalidURL if the url has an invalid format.
func New(baseURL string, opts ...Option) (*Indexer, error) {
	return NewWithHeaders(baseURL, nil, opts...)
}

// NewWithHeaders builds an indexer facade that sends headers with every request.
// Use it for third party services that require an API token.
//
// Returns a construction error matching ErrInvalidURL or ErrInvalidHeader if the url or the headers have an invalid format.
func NewWithHeaders(baseURL string, headers algorand.Headers, opts ...Option) (*Indexer, error) {
	o := options{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = adapter.NewHTTPClient(adapter.HTTPOptions{Timeout: o.timeout})
	}

	client, err := algorand.NewIndexerClient(baseURL, headers, httpClient, o.rateLimitProxy, adapter.NewJSON())
	if err != nil {
		return nil, constructionError("new", err)
	}

	return NewFromClient(client), nil
}

// NewFromClient wraps an existing client, e.g. a decorated or mocked one
func NewFromClient(client algorand.IndexerClient) *Indexer {
	return &Indexer{client: client}
}

// call is the single conversion point from client errors to *Error
func call[T any](ctx context.Context, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	result, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, requestError(op, err)
	}
	return result, nil
}

// Health returns nil if the indexer is healthy
func (i *Indexer) Health(ctx context.Context) error {
	_, err := call(ctx, "health", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, i.client.Health(ctx)
	})
	return err
}

// Accounts searches for accounts
func (i *Indexer) Accounts(ctx context.Context, query *algorand.QueryAccount) (*algorand.AccountResponse, error) {
	return call(ctx, "accounts", func(ctx context.Context) (*algorand.AccountResponse, error) {
		return i.client.Accounts(ctx, query)
	})
}

// AccountInfo looks up account information
func (i *Indexer) AccountInfo(ctx context.Context, address algorand.Address, query *algorand.QueryAccountInfo) (*algorand.AccountInfoResponse, error) {
	return call(ctx, "account_info", func(ctx context.Context) (*algorand.AccountInfoResponse, error) {
		return i.client.AccountInfo(ctx, address, query)
	})
}

// AccountAssets looks up the assets held by an account
func (i *Indexer) AccountAssets(ctx context.Context, address algorand.Address, query *algorand.QueryAccountAssetsInfo) (*algorand.AccountAssetsResponse, error) {
	return call(ctx, "account_assets", func(ctx context.Context) (*algorand.AccountAssetsResponse, error) {
		return i.client.AccountAssets(ctx, address, query)
	})
}

// AccountTransactions looks up account transactions
func (i *Indexer) AccountTransactions(ctx context.Context, address algorand.Address, query *algorand.QueryAccountTransaction) (*algorand.AccountTransactionResponse, error) {
	return call(ctx, "account_transactions", func(ctx context.Context) (*algorand.AccountTransactionResponse, error) {
		return i.client.AccountTransactions(ctx, address, query)
	})
}

// Applications searches for applications
func (i *Indexer) Applications(ctx context.Context, query *algorand.QueryApplications) (*algorand.ApplicationResponse, error) {
	return call(ctx, "applications", func(ctx context.Context) (*algorand.ApplicationResponse, error) {
		return i.client.Applications(ctx, query)
	})
}

// ApplicationInfo looks up an application
func (i *Indexer) ApplicationInfo(ctx context.Context, id uint64, query *algorand.QueryApplicationInfo) (*algorand.ApplicationInfoResponse, error) {
	return call(ctx, "application_info", func(ctx context.Context) (*algorand.ApplicationInfoResponse, error) {
		return i.client.ApplicationInfo(ctx, id, query)
	})
}

// Assets searches for assets
func (i *Indexer) Assets(ctx context.Context, query *algorand.QueryAssets) (*algorand.AssetResponse, error) {
	return call(ctx, "assets", func(ctx context.Context) (*algorand.AssetResponse, error) {
		return i.client.Assets(ctx, query)
	})
}

// AssetsInfo looks up asset information
func (i *Indexer) AssetsInfo(ctx context.Context, id uint64, query *algorand.QueryAssetsInfo) (*algorand.AssetsInfoResponse, error) {
	return call(ctx, "assets_info", func(ctx context.Context) (*algorand.AssetsInfoResponse, error) {
		return i.client.AssetsInfo(ctx, id, query)
	})
}

// AssetBalances looks up the list of accounts who hold this asset
func (i *Indexer) AssetBalances(ctx context.Context, id uint64, query *algorand.QueryBalances) (*algorand.BalancesResponse, error) {
	return call(ctx, "asset_balances", func(ctx context.Context) (*algorand.BalancesResponse, error) {
		return i.client.AssetBalances(ctx, id, query)
	})
}

// AssetTransactions looks up transactions for an asset
func (i *Indexer) AssetTransactions(ctx context.Context, id uint64, query *algorand.QueryAssetTransaction) (*algorand.AssetTransactionResponse, error) {
	return call(ctx, "asset_transactions", func(ctx context.Context) (*algorand.AssetTransactionResponse, error) {
		return i.client.AssetTransactions(ctx, id, query)
	})
}

// Block looks up a block
func (i *Indexer) Block(ctx context.Context, round algorand.Round) (*algorand.Block, error) {
	return call(ctx, "block", func(ctx context.Context) (*algorand.Block, error) {
		return i.client.Block(ctx, round)
	})
}

// Transactions searches for transactions
func (i *Indexer) Transactions(ctx context.Context, query *algorand.QueryTransaction) (*algorand.TransactionResponse, error) {
	return call(ctx, "transactions", func(ctx context.Context) (*algorand.TransactionResponse, error) {
		return i.client.Transactions(ctx, query)
	})
}

// TransactionInfo looks up a single transaction
func (i *Indexer) TransactionInfo(ctx context.Context, txID string) (*algorand.TransactionInfoResponse, error) {
	return call(ctx, "transaction_info", func(ctx context.Context) (*algorand.TransactionInfoResponse, error) {
		return i.client.TransactionInfo(ctx, txID)
	})
}
