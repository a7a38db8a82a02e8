package algorand_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-algorand-indexer/internal/adapter"
	"github.com/feral-file/ff-algorand-indexer/internal/logger"
	"github.com/feral-file/ff-algorand-indexer/internal/mocks"
	"github.com/feral-file/ff-algorand-indexer/internal/providers/algorand"
)

const (
	INDEXER_URL = "https://mainnet-idx.example.com"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func newTestClient(t *testing.T, ctrl *gomock.Controller, headers algorand.Headers) (algorand.IndexerClient, *mocks.MockHTTPClient) {
	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client, err := algorand.NewIndexerClient(INDEXER_URL, headers, mockHTTPClient, nil, adapter.NewJSON())
	require.NoError(t, err)
	return client, mockHTTPClient
}

func TestNewIndexerClient_InvalidURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{name: "empty", baseURL: ""},
		{name: "relative", baseURL: "/v2"},
		{name: "no scheme", baseURL: "example.com"},
		{name: "unsupported scheme", baseURL: "ftp://example.com"},
		{name: "with query", baseURL: "https://example.com?token=1"},
		{name: "with fragment", baseURL: "https://example.com#frag"},
		{name: "unparseable", baseURL: "http://[::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := algorand.NewIndexerClient(tt.baseURL, nil, nil, nil, adapter.NewJSON())
			assert.ErrorIs(t, err, algorand.ErrInvalidURL)
			assert.Nil(t, client)
		})
	}
}

func TestNewIndexerClient_InvalidHeader(t *testing.T) {
	tests := []struct {
		name    string
		headers algorand.Headers
	}{
		{name: "empty name", headers: algorand.Headers{"": "value"}},
		{name: "space in name", headers: algorand.Headers{"X Api Key": "value"}},
		{name: "newline in value", headers: algorand.Headers{"X-API-Key": "a\r\nInjected: 1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := algorand.NewIndexerClient(INDEXER_URL, tt.headers, nil, nil, adapter.NewJSON())
			assert.ErrorIs(t, err, algorand.ErrInvalidHeader)
			assert.Nil(t, client)
		})
	}
}

func TestIndexerClient_TrailingSlashTrimmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client, err := algorand.NewIndexerClient(INDEXER_URL+"/", nil, mockHTTPClient, nil, adapter.NewJSON())
	require.NoError(t, err)

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), INDEXER_URL+"/health", gomock.Any()).
		Return([]byte(`{"round":1}`), nil).
		Times(1)

	assert.NoError(t, client.Health(context.Background()))
}

func TestIndexerClient_SendsHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	headers := algorand.Headers{"X-API-Key": "secret"}
	client, mockHTTPClient := newTestClient(t, ctrl, headers)

	// Later changes to the caller's map are not observed
	headers["X-API-Key"] = "changed"

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), INDEXER_URL+"/health", map[string]string{"X-API-Key": "secret"}).
		Return([]byte(`{}`), nil).
		Times(1)

	assert.NoError(t, client.Health(context.Background()))
}

func TestIndexerClient_Endpoints(t *testing.T) {
	var address algorand.Address
	address[31] = 1
	limit := uint64(2)
	round := algorand.Round(50)

	tests := []struct {
		name     string
		expected string
		body     string
		call     func(ctx context.Context, c algorand.IndexerClient) (interface{}, error)
		validate func(t *testing.T, result interface{})
	}{
		{
			name:     "accounts",
			expected: INDEXER_URL + "/v2/accounts?limit=2",
			body:     `{"accounts":[{"address":"A","amount":5}],"current-round":9,"next-token":"n"}`,
			call: func(ctx context.Context, c algorand.IndexerClient) (interface{}, error) {
				return c.Accounts(ctx, &algorand.QueryAccount{Limit: &limit})
			},
			validate: func(t *testing.T, result interface{}) {
				resp := result.(*algorand.AccountResponse)
				require.Len(t, resp.Accounts, 1)
				assert.Equal(t, "A", resp.Accounts[0].Address)
				assert.Equal(t, algorand.Round(9), resp.CurrentRound)
				assert.Equal(t, "n", resp.NextToken)
			},
		},
		{
			name:     "account info",
			expected: INDEXER_URL + "/v2/accounts/" + address.String() + "?round=50",
			body:     `{"account":{"address":"` + address.String() + `"},"current-round":50}`,
			call: func(ctx context.Context, c algorand.IndexerClient) (interface{}, error) {
				return c.AccountInfo(ctx, address, &algorand.QueryAccountInfo{Round: &round})
			},
			validate: func(t *testing.T, result interface{}) {
				resp := result.(*algorand.AccountInfoResponse)
				assert.Equal(t, address.String(), resp.Account.Address)
			},
		},
		{
			name:     "account assets",
			expected: INDEXER_URL + "/v2/accounts/" + address.String() + "/assets",
			body:     `{"assets":[{"asset-id":7,"amount":3}],"current-round":1}`,
			call: func(ctx context.Context, c algorand.IndexerClient) (interface{}, error) {
				return c.AccountAssets(ctx, address, nil)
			},
			validate: func(t *testing.T, result interface{}) {
				resp := result.(*algorand.AccountAssetsResponse)
				require.Len(t, resp.Assets, 1)
				assert.Equal(t, uint64(7), resp.Assets[0].AssetID)
			},
		},
		{
			name:     "account transactions",
			expected: INDEXER_URL + "/v2/accounts/" + address.String() + "/transactions?tx-type=pay",
			body:     `{"transactions":[{"id":"T1","tx-type":"pay"}],"current-round":1}`,
			call: func(ctx context.Context, c algorand.IndexerClient) (interface{}, error) {
				return c.AccountTransactions(ctx, address, &algorand.QueryAccountTransaction{TxType: algorand.TxTypePayment})
			},
			validate: func(t *testing.T, result interface{}) {
				resp := result.(*algorand.AccountTransactionResponse)
				require.Len(t, resp.Transactions, 1)
				assert.Equal(t, algorand.TxTypePayment, resp.Transactions[0].TxType)
			},
		},
		{
			name:     "applications",
			expected: INDEXER_URL + "/v2/applications",
			body:     `{"applications":[{"id":3}],"current-round":1}`,
			call: func(ctx context.Context, c algorand.IndexerClient) (interface{}, error) {
				return c.Applications(ctx, &algorand.QueryApplications{})
			},
			validate: func(t *testing.T, result interface{}) {
				resp := result.(*algorand.ApplicationResponse)
				require.Len(t, resp.Applications, 1)
				assert.Equal(t, uint64(3), resp.Applications[0].ID)
			},
		},
		{
			name:     "application info",
			expected: INDEXER_URL + "/v2/applications/3?include-all=true",
			body:     `{"application":{"id":3},"current-round":1}`,
			call: func(ctx context.Context, c algorand.IndexerClient) (interface{}, error) {
				return c.ApplicationInfo(ctx, 3, &algorand.QueryApplicationInfo{IncludeAll: true})
			},
			validate: func(t *testing.T, result interface{}) {
				resp := result.(*algorand.ApplicationInfoResponse)
				require.NotNil(t, resp.Application)
				assert.Equal(t, uint64(3), resp.Application.ID)
			},
		},
		{
			name:     "assets",
			expected: INDEXER_URL + "/v2/assets?unit=USDC",
			body:     `{"assets":[{"index":31566704}],"current-round":1}`,
			call: func(ctx context.Context, c algorand.IndexerClient) (interface{}, error) {
				return c.Assets(ctx, &algorand.QueryAssets{Unit: "USDC"})
			},
			validate: func(t *testing.T, result interface{}) {
				resp := result.(*algorand.AssetResponse)
				require.Len(t, resp.Assets, 1)
				assert.Equal(t, uint64(31566704), resp.Assets[0].Index)
			},
		},
		{
			name:     "asset info",
			expected: INDEXER_URL + "/v2/assets/31566704",
			body:     `{"asset":{"index":31566704},"current-round":1}`,
			call: func(ctx context.Context, c algorand.IndexerClient) (interface{}, error) {
				return c.AssetsInfo(ctx, 31566704, nil)
			},
			validate: func(t *testing.T, result interface{}) {
				resp := result.(*algorand.AssetsInfoResponse)
				assert.Equal(t, uint64(31566704), resp.Asset.Index)
			},
		},
		{
			name:     "asset balances",
			expected: INDEXER_URL + "/v2/assets/31566704/balances?limit=2",
			body:     `{"balances":[{"address":"B","amount":10}],"current-round":1}`,
			call: func(ctx context.Context, c algorand.IndexerClient) (interface{}, error) {
				return c.AssetBalances(ctx, 31566704, &algorand.QueryBalances{Limit: &limit})
			},
			validate: func(t *testing.T, result interface{}) {
				resp := result.(*algorand.BalancesResponse)
				require.Len(t, resp.Balances, 1)
				assert.Equal(t, "B", resp.Balances[0].Address)
				assert.Equal(t, uint64(10), resp.Balances[0].Amount)
			},
		},
		{
			name:     "asset transactions",
			expected: INDEXER_URL + "/v2/assets/31566704/transactions?address-role=sender",
			body:     `{"transactions":[],"current-round":1}`,
			call: func(ctx context.Context, c algorand.IndexerClient) (interface{}, error) {
				return c.AssetTransactions(ctx, 31566704, &algorand.QueryAssetTransaction{AddressRole: algorand.AddressRoleSender})
			},
			validate: func(t *testing.T, result interface{}) {
				resp := result.(*algorand.AssetTransactionResponse)
				assert.Empty(t, resp.Transactions)
			},
		},
		{
			name:     "block",
			expected: INDEXER_URL + "/v2/blocks/100",
			body:     `{"round":100,"genesis-id":"mainnet-v1.0","timestamp":1700000000}`,
			call: func(ctx context.Context, c algorand.IndexerClient) (interface{}, error) {
				return c.Block(ctx, 100)
			},
			validate: func(t *testing.T, result interface{}) {
				resp := result.(*algorand.Block)
				assert.Equal(t, algorand.Round(100), resp.Round)
				assert.Equal(t, "mainnet-v1.0", resp.GenesisID)
				assert.Equal(t, int64(1700000000), resp.Timestamp)
			},
		},
		{
			name:     "transactions",
			expected: INDEXER_URL + "/v2/transactions?exclude-close-to=true",
			body:     `{"transactions":[{"id":"T2"}],"current-round":1}`,
			call: func(ctx context.Context, c algorand.IndexerClient) (interface{}, error) {
				return c.Transactions(ctx, &algorand.QueryTransaction{ExcludeCloseTo: true})
			},
			validate: func(t *testing.T, result interface{}) {
				resp := result.(*algorand.TransactionResponse)
				require.Len(t, resp.Transactions, 1)
				assert.Equal(t, "T2", resp.Transactions[0].ID)
			},
		},
		{
			name:     "transaction info",
			expected: INDEXER_URL + "/v2/transactions/T3",
			body:     `{"transaction":{"id":"T3","fee":1000},"current-round":1}`,
			call: func(ctx context.Context, c algorand.IndexerClient) (interface{}, error) {
				return c.TransactionInfo(ctx, "T3")
			},
			validate: func(t *testing.T, result interface{}) {
				resp := result.(*algorand.TransactionInfoResponse)
				assert.Equal(t, "T3", resp.Transaction.ID)
				assert.Equal(t, uint64(1000), resp.Transaction.Fee)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client, mockHTTPClient := newTestClient(t, ctrl, nil)

			mockHTTPClient.EXPECT().
				GetBytes(gomock.Any(), tt.expected, gomock.Any()).
				Return([]byte(tt.body), nil).
				Times(1)

			result, err := tt.call(context.Background(), client)
			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestIndexerClient_TransactionInfo_EscapesID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient := newTestClient(t, ctrl, nil)

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), INDEXER_URL+"/v2/transactions/a%2Fb", gomock.Any()).
		Return([]byte(`{"transaction":{"id":"a/b"}}`), nil).
		Times(1)

	resp, err := client.TransactionInfo(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "a/b", resp.Transaction.ID)
}

func TestIndexerClient_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient := newTestClient(t, ctrl, nil)
	endpoint := INDEXER_URL + "/v2/transactions/MISSING"

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), endpoint, gomock.Any()).
		Return(nil, &adapter.HTTPStatusError{
			URL:        endpoint,
			StatusCode: 404,
			Body:       []byte(`{"message":"no transaction found for transaction id: MISSING"}`),
		}).
		Times(1)

	resp, err := client.TransactionInfo(context.Background(), "MISSING")
	assert.Nil(t, resp)

	var reqErr *algorand.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.True(t, reqErr.IsNotFound())
	assert.Equal(t, 404, reqErr.StatusCode)
	assert.Equal(t, endpoint, reqErr.URL)
	assert.Equal(t, "no transaction found for transaction id: MISSING", reqErr.Message)

	var statusErr *adapter.HTTPStatusError
	assert.True(t, errors.As(err, &statusErr))
}

func TestIndexerClient_ErrorBodyNotJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient := newTestClient(t, ctrl, nil)

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), INDEXER_URL+"/v2/blocks/1", gomock.Any()).
		Return(nil, &adapter.HTTPStatusError{StatusCode: 502, Body: []byte(" bad gateway \n")}).
		Times(1)

	_, err := client.Block(context.Background(), 1)

	var reqErr *algorand.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, 502, reqErr.StatusCode)
	assert.Equal(t, "bad gateway", reqErr.Message)
	assert.False(t, reqErr.IsNotFound())
}

func TestIndexerClient_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient := newTestClient(t, ctrl, nil)
	expectedErr := errors.New("connection refused")

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, expectedErr).
		Times(1)

	err := client.Health(context.Background())
	assert.ErrorIs(t, err, expectedErr)

	var reqErr *algorand.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, 0, reqErr.StatusCode)
	assert.False(t, reqErr.IsTimeout())
}

func TestIndexerClient_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient := newTestClient(t, ctrl, nil)

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, context.DeadlineExceeded).
		Times(1)

	_, err := client.Accounts(context.Background(), nil)

	var reqErr *algorand.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.True(t, reqErr.IsTimeout())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestIndexerClient_DecodeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient := newTestClient(t, ctrl, nil)

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(`{"round":"not a number"}`), nil).
		Times(1)

	resp, err := client.Block(context.Background(), 5)
	assert.Nil(t, resp)

	var reqErr *algorand.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "failed to decode response", reqErr.Message)
}

func TestIndexerClient_UsesRateLimitProxy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockRateLimitProxy := mocks.NewMockRateLimitProxy(ctrl)
	client, err := algorand.NewIndexerClient(INDEXER_URL, nil, mockHTTPClient, mockRateLimitProxy, adapter.NewJSON())
	require.NoError(t, err)

	ctx := context.Background()

	mockRateLimitProxy.EXPECT().
		Request(gomock.Any(), algorand.PROVIDER_NAME, gomock.Any()).
		DoAndReturn(func(ctx context.Context, providerName string, fn func(context.Context) (interface{}, error)) (interface{}, error) {
			return fn(ctx)
		}).
		Times(1)

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), INDEXER_URL+"/v2/blocks/7", gomock.Any()).
		Return([]byte(`{"round":7}`), nil).
		Times(1)

	block, err := client.Block(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, algorand.Round(7), block.Round)
}

func TestIndexerClient_RateLimitProxyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockRateLimitProxy := mocks.NewMockRateLimitProxy(ctrl)
	client, err := algorand.NewIndexerClient(INDEXER_URL, nil, mockHTTPClient, mockRateLimitProxy, adapter.NewJSON())
	require.NoError(t, err)

	expectedErr := errors.New("rate limit wait for algorand-indexer: deadline")
	mockRateLimitProxy.EXPECT().
		Request(gomock.Any(), algorand.PROVIDER_NAME, gomock.Any()).
		Return(nil, expectedErr).
		Times(1)

	err = client.Health(context.Background())
	assert.ErrorIs(t, err, expectedErr)
}
