package adapter_test

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-algorand-indexer/internal/adapter"
	"github.com/feral-file/ff-algorand-indexer/internal/mocks"
)

func TestCanonicalizer_SortsKeys(t *testing.T) {
	c := adapter.NewCanonicalizer(adapter.NewJSON())

	out, err := c.Canonicalize(map[string]interface{}{
		"round":      uint64(100),
		"genesis-id": "mainnet-v1.0",
		"rewards":    map[string]interface{}{"rewards-rate": 0, "fee-sink": "Y76M"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"genesis-id":"mainnet-v1.0","rewards":{"fee-sink":"Y76M","rewards-rate":0},"round":100}`, string(out))
}

func TestCanonicalizer_Deterministic(t *testing.T) {
	c := adapter.NewCanonicalizer(adapter.NewJSON())

	type holding struct {
		Amount  uint64 `json:"amount"`
		AssetID uint64 `json:"asset-id"`
	}

	first, err := c.Canonicalize(holding{Amount: 5, AssetID: 31566704})
	require.NoError(t, err)
	second, err := c.Canonicalize(map[string]uint64{"asset-id": 31566704, "amount": 5})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCanonicalizer_MarshalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJSON := mocks.NewMockJSON(ctrl)
	mockJSON.EXPECT().Marshal(gomock.Any()).Return(nil, errors.New("unsupported type")).Times(1)

	_, err := adapter.NewCanonicalizer(mockJSON).Canonicalize(struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal")
}

func TestCanonicalizer_LargeIntegersKeepAllDigits(t *testing.T) {
	c := adapter.NewCanonicalizer(adapter.NewJSON())

	type params struct {
		Decimals uint64 `json:"decimals"`
		Total    uint64 `json:"total"`
	}
	type asset struct {
		Index  uint64 `json:"index"`
		Params params `json:"params"`
	}

	out, err := c.Canonicalize(asset{
		Index:  31566704,
		Params: params{Decimals: 6, Total: math.MaxUint64},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"index":31566704,"params":{"decimals":6,"total":"18446744073709551615"}}`, string(out))
}

func TestCanonicalizer_SafeIntegerBoundary(t *testing.T) {
	c := adapter.NewCanonicalizer(adapter.NewJSON())

	out, err := c.Canonicalize(map[string]interface{}{
		"amounts": []uint64{9007199254740991, 9007199254740992},
		"ratio":   1.5,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"amounts":[9007199254740991,"9007199254740992"],"ratio":1.5}`, string(out))
}
