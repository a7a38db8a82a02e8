package algorand

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
)

// TxType is a transaction type filter
type TxType string

const (
	TxTypePayment       TxType = "pay"
	TxTypeKeyreg        TxType = "keyreg"
	TxTypeAssetConfig   TxType = "acfg"
	TxTypeAssetTransfer TxType = "axfer"
	TxTypeAssetFreeze   TxType = "afrz"
	TxTypeApplication   TxType = "appl"
	TxTypeStateProof    TxType = "stpf"
	TxTypeHeartbeat     TxType = "hb"
)

// SigType is a signature type filter
type SigType string

const (
	SigTypeSig      SigType = "sig"
	SigTypeMultisig SigType = "msig"
	SigTypeLogicsig SigType = "lsig"
)

// AddressRole narrows an address filter to one side of a transaction
type AddressRole string

const (
	AddressRoleSender       AddressRole = "sender"
	AddressRoleReceiver     AddressRole = "receiver"
	AddressRoleFreezeTarget AddressRole = "freeze-target"
)

// QueryAccount filters an account search
type QueryAccount struct {
	ApplicationID       *uint64  `url:"application-id,omitempty"`
	AssetID             *uint64  `url:"asset-id,omitempty"`
	AuthAddr            string   `url:"auth-addr,omitempty"`
	CurrencyGreaterThan *uint64  `url:"currency-greater-than,omitempty"`
	CurrencyLessThan    *uint64  `url:"currency-less-than,omitempty"`
	Exclude             []string `url:"exclude,comma,omitempty"`
	IncludeAll          bool     `url:"include-all,omitempty"`
	Limit               *uint64  `url:"limit,omitempty"`
	Next                string   `url:"next,omitempty"`
	Round               *Round   `url:"round,omitempty"`
}

// QueryAccountInfo tunes an account lookup
type QueryAccountInfo struct {
	Exclude    []string `url:"exclude,comma,omitempty"`
	IncludeAll bool     `url:"include-all,omitempty"`
	Round      *Round   `url:"round,omitempty"`
}

// QueryAccountAssetsInfo filters the assets of an account
type QueryAccountAssetsInfo struct {
	AssetID    *uint64 `url:"asset-id,omitempty"`
	IncludeAll bool    `url:"include-all,omitempty"`
	Limit      *uint64 `url:"limit,omitempty"`
	Next       string  `url:"next,omitempty"`
}

// QueryAccountTransaction filters the transactions of an account.
// NotePrefix is base64 encoded, as in the other transaction queries.
type QueryAccountTransaction struct {
	AfterTime           time.Time `url:"after-time,omitempty"`
	AssetID             *uint64   `url:"asset-id,omitempty"`
	BeforeTime          time.Time `url:"before-time,omitempty"`
	CurrencyGreaterThan *uint64   `url:"currency-greater-than,omitempty"`
	CurrencyLessThan    *uint64   `url:"currency-less-than,omitempty"`
	Limit               *uint64   `url:"limit,omitempty"`
	MaxRound            *Round    `url:"max-round,omitempty"`
	MinRound            *Round    `url:"min-round,omitempty"`
	Next                string    `url:"next,omitempty"`
	NotePrefix          string    `url:"note-prefix,omitempty"`
	RekeyTo             bool      `url:"rekey-to,omitempty"`
	Round               *Round    `url:"round,omitempty"`
	SigType             SigType   `url:"sig-type,omitempty"`
	TxType              TxType    `url:"tx-type,omitempty"`
	TxID                string    `url:"txid,omitempty"`
}

// QueryApplications filters an application search
type QueryApplications struct {
	ApplicationID *uint64 `url:"application-id,omitempty"`
	Creator       string  `url:"creator,omitempty"`
	IncludeAll    bool    `url:"include-all,omitempty"`
	Limit         *uint64 `url:"limit,omitempty"`
	Next          string  `url:"next,omitempty"`
}

// QueryApplicationInfo tunes an application lookup
type QueryApplicationInfo struct {
	IncludeAll bool `url:"include-all,omitempty"`
}

// QueryAssets filters an asset search
type QueryAssets struct {
	AssetID    *uint64 `url:"asset-id,omitempty"`
	Creator    string  `url:"creator,omitempty"`
	IncludeAll bool    `url:"include-all,omitempty"`
	Limit      *uint64 `url:"limit,omitempty"`
	Name       string  `url:"name,omitempty"`
	Next       string  `url:"next,omitempty"`
	Unit       string  `url:"unit,omitempty"`
}

// QueryAssetsInfo tunes an asset lookup
type QueryAssetsInfo struct {
	IncludeAll bool `url:"include-all,omitempty"`
}

// QueryBalances filters the holders of an asset
type QueryBalances struct {
	CurrencyGreaterThan *uint64 `url:"currency-greater-than,omitempty"`
	CurrencyLessThan    *uint64 `url:"currency-less-than,omitempty"`
	IncludeAll          bool    `url:"include-all,omitempty"`
	Limit               *uint64 `url:"limit,omitempty"`
	Next                string  `url:"next,omitempty"`
}

// QueryAssetTransaction filters the transactions of an asset
type QueryAssetTransaction struct {
	Address             string      `url:"address,omitempty"`
	AddressRole         AddressRole `url:"address-role,omitempty"`
	AfterTime           time.Time   `url:"after-time,omitempty"`
	BeforeTime          time.Time   `url:"before-time,omitempty"`
	CurrencyGreaterThan *uint64     `url:"currency-greater-than,omitempty"`
	CurrencyLessThan    *uint64     `url:"currency-less-than,omitempty"`
	ExcludeCloseTo      bool        `url:"exclude-close-to,omitempty"`
	Limit               *uint64     `url:"limit,omitempty"`
	MaxRound            *Round      `url:"max-round,omitempty"`
	MinRound            *Round      `url:"min-round,omitempty"`
	Next                string      `url:"next,omitempty"`
	NotePrefix          string      `url:"note-prefix,omitempty"`
	RekeyTo             bool        `url:"rekey-to,omitempty"`
	Round               *Round      `url:"round,omitempty"`
	SigType             SigType     `url:"sig-type,omitempty"`
	TxType              TxType      `url:"tx-type,omitempty"`
	TxID                string      `url:"txid,omitempty"`
}

// QueryTransaction filters a transaction search
type QueryTransaction struct {
	Address             string      `url:"address,omitempty"`
	AddressRole         AddressRole `url:"address-role,omitempty"`
	AfterTime           time.Time   `url:"after-time,omitempty"`
	ApplicationID       *uint64     `url:"application-id,omitempty"`
	AssetID             *uint64     `url:"asset-id,omitempty"`
	BeforeTime          time.Time   `url:"before-time,omitempty"`
	CurrencyGreaterThan *uint64     `url:"currency-greater-than,omitempty"`
	CurrencyLessThan    *uint64     `url:"currency-less-than,omitempty"`
	ExcludeCloseTo      bool        `url:"exclude-close-to,omitempty"`
	Limit               *uint64     `url:"limit,omitempty"`
	MaxRound            *Round      `url:"max-round,omitempty"`
	MinRound            *Round      `url:"min-round,omitempty"`
	Next                string      `url:"next,omitempty"`
	NotePrefix          string      `url:"note-prefix,omitempty"`
	RekeyTo             bool        `url:"rekey-to,omitempty"`
	Round               *Round      `url:"round,omitempty"`
	SigType             SigType     `url:"sig-type,omitempty"`
	TxType              TxType      `url:"tx-type,omitempty"`
	TxID                string      `url:"txid,omitempty"`
}

// encodeQuery turns a query object into URL parameters. A nil query yields none.
func encodeQuery(q interface{}) (url.Values, error) {
	values, err := query.Values(q)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}
	return values, nil
}
