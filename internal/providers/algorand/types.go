package algorand

// HealthCheck is the body of the indexer /health endpoint
type HealthCheck struct {
	Data        map[string]interface{} `json:"data,omitempty"`
	DBAvailable bool                   `json:"db-available"`
	Errors      []string               `json:"errors,omitempty"`
	IsMigrating bool                   `json:"is-migrating"`
	Message     string                 `json:"message"`
	Round       Round                  `json:"round"`
	Version     string                 `json:"version,omitempty"`
}

// StateSchema is the maximum number of uints and byte slices an application may store
type StateSchema struct {
	NumByteSlice uint64 `json:"num-byte-slice"`
	NumUint      uint64 `json:"num-uint"`
}

// TealValue is a TEAL stack value, Type 1 is bytes and 2 is uint
type TealValue struct {
	Bytes string `json:"bytes"`
	Type  uint64 `json:"type"`
	Uint  uint64 `json:"uint"`
}

// TealKeyValue is a key/value pair of application state
type TealKeyValue struct {
	Key   string    `json:"key"`
	Value TealValue `json:"value"`
}

// EvalDelta is a change to a TEAL value
type EvalDelta struct {
	Action uint64 `json:"action"`
	Bytes  string `json:"bytes,omitempty"`
	Uint   uint64 `json:"uint,omitempty"`
}

// EvalDeltaKeyValue is a keyed EvalDelta
type EvalDeltaKeyValue struct {
	Key   string    `json:"key"`
	Value EvalDelta `json:"value"`
}

// AccountStateDelta is the local state change of one account
type AccountStateDelta struct {
	Address string              `json:"address"`
	Delta   []EvalDeltaKeyValue `json:"delta"`
}

// AccountParticipation describes the participation keys registered by an account
type AccountParticipation struct {
	SelectionParticipationKey []byte `json:"selection-participation-key"`
	StateProofKey             []byte `json:"state-proof-key,omitempty"`
	VoteFirstValid            Round  `json:"vote-first-valid"`
	VoteKeyDilution           uint64 `json:"vote-key-dilution"`
	VoteLastValid             Round  `json:"vote-last-valid"`
	VoteParticipationKey      []byte `json:"vote-participation-key"`
}

// ApplicationLocalState is the local state an account holds for an application
type ApplicationLocalState struct {
	ClosedOutAtRound *Round         `json:"closed-out-at-round,omitempty"`
	Deleted          *bool          `json:"deleted,omitempty"`
	ID               uint64         `json:"id"`
	KeyValue         []TealKeyValue `json:"key-value,omitempty"`
	OptedInAtRound   *Round         `json:"opted-in-at-round,omitempty"`
	Schema           StateSchema    `json:"schema"`
}

// ApplicationParams are the parameters an application was created with
type ApplicationParams struct {
	ApprovalProgram   []byte         `json:"approval-program"`
	ClearStateProgram []byte         `json:"clear-state-program"`
	Creator           string         `json:"creator,omitempty"`
	ExtraProgramPages uint64         `json:"extra-program-pages,omitempty"`
	GlobalState       []TealKeyValue `json:"global-state,omitempty"`
	GlobalStateSchema *StateSchema   `json:"global-state-schema,omitempty"`
	LocalStateSchema  *StateSchema   `json:"local-state-schema,omitempty"`
}

// Application is an application and its current parameters
type Application struct {
	CreatedAtRound *Round            `json:"created-at-round,omitempty"`
	Deleted        *bool             `json:"deleted,omitempty"`
	DeletedAtRound *Round            `json:"deleted-at-round,omitempty"`
	ID             uint64            `json:"id"`
	Params         ApplicationParams `json:"params"`
}

// AssetParams are the parameters an asset was created with
type AssetParams struct {
	Clawback      string `json:"clawback,omitempty"`
	Creator       string `json:"creator"`
	Decimals      uint64 `json:"decimals"`
	DefaultFrozen *bool  `json:"default-frozen,omitempty"`
	Freeze        string `json:"freeze,omitempty"`
	Manager       string `json:"manager,omitempty"`
	MetadataHash  []byte `json:"metadata-hash,omitempty"`
	Name          string `json:"name,omitempty"`
	NameB64       []byte `json:"name-b64,omitempty"`
	Reserve       string `json:"reserve,omitempty"`
	Total         uint64 `json:"total"`
	UnitName      string `json:"unit-name,omitempty"`
	UnitNameB64   []byte `json:"unit-name-b64,omitempty"`
	URL           string `json:"url,omitempty"`
	URLB64        []byte `json:"url-b64,omitempty"`
}

// Asset is an asset and its current parameters
type Asset struct {
	CreatedAtRound   *Round      `json:"created-at-round,omitempty"`
	Deleted          *bool       `json:"deleted,omitempty"`
	DestroyedAtRound *Round      `json:"destroyed-at-round,omitempty"`
	Index            uint64      `json:"index"`
	Params           AssetParams `json:"params"`
}

// AssetHolding is an account's balance of one asset
type AssetHolding struct {
	Amount          uint64 `json:"amount"`
	AssetID         uint64 `json:"asset-id"`
	Deleted         *bool  `json:"deleted,omitempty"`
	IsFrozen        bool   `json:"is-frozen"`
	OptedInAtRound  *Round `json:"opted-in-at-round,omitempty"`
	OptedOutAtRound *Round `json:"opted-out-at-round,omitempty"`
}

// MiniAssetHolding is one holder of an asset, returned by the balances lookup
type MiniAssetHolding struct {
	Address         string `json:"address"`
	Amount          uint64 `json:"amount"`
	Deleted         *bool  `json:"deleted,omitempty"`
	IsFrozen        bool   `json:"is-frozen"`
	OptedInAtRound  *Round `json:"opted-in-at-round,omitempty"`
	OptedOutAtRound *Round `json:"opted-out-at-round,omitempty"`
}

// Account is the state of an account at a round
type Account struct {
	Address                     string                  `json:"address"`
	Amount                      uint64                  `json:"amount"`
	AmountWithoutPendingRewards uint64                  `json:"amount-without-pending-rewards"`
	AppsLocalState              []ApplicationLocalState `json:"apps-local-state,omitempty"`
	AppsTotalExtraPages         uint64                  `json:"apps-total-extra-pages,omitempty"`
	AppsTotalSchema             *StateSchema            `json:"apps-total-schema,omitempty"`
	Assets                      []AssetHolding          `json:"assets,omitempty"`
	AuthAddr                    string                  `json:"auth-addr,omitempty"`
	ClosedAtRound               *Round                  `json:"closed-at-round,omitempty"`
	CreatedApps                 []Application           `json:"created-apps,omitempty"`
	CreatedAssets               []Asset                 `json:"created-assets,omitempty"`
	CreatedAtRound              *Round                  `json:"created-at-round,omitempty"`
	Deleted                     *bool                   `json:"deleted,omitempty"`
	MinBalance                  uint64                  `json:"min-balance,omitempty"`
	Participation               *AccountParticipation   `json:"participation,omitempty"`
	PendingRewards              uint64                  `json:"pending-rewards"`
	RewardBase                  uint64                  `json:"reward-base,omitempty"`
	Rewards                     uint64                  `json:"rewards"`
	Round                       Round                   `json:"round"`
	SigType                     SigType                 `json:"sig-type,omitempty"`
	Status                      string                  `json:"status"`
	TotalAppsOptedIn            uint64                  `json:"total-apps-opted-in"`
	TotalAssetsOptedIn          uint64                  `json:"total-assets-opted-in"`
	TotalBoxBytes               uint64                  `json:"total-box-bytes"`
	TotalBoxes                  uint64                  `json:"total-boxes"`
	TotalCreatedApps            uint64                  `json:"total-created-apps"`
	TotalCreatedAssets          uint64                  `json:"total-created-assets"`
}

// TransactionPayment is the payment specific part of a transaction
type TransactionPayment struct {
	Amount           uint64 `json:"amount"`
	CloseAmount      uint64 `json:"close-amount,omitempty"`
	CloseRemainderTo string `json:"close-remainder-to,omitempty"`
	Receiver         string `json:"receiver"`
}

// TransactionAssetTransfer is the asset transfer specific part of a transaction
type TransactionAssetTransfer struct {
	Amount      uint64 `json:"amount"`
	AssetID     uint64 `json:"asset-id"`
	CloseAmount uint64 `json:"close-amount,omitempty"`
	CloseTo     string `json:"close-to,omitempty"`
	Receiver    string `json:"receiver"`
	Sender      string `json:"sender,omitempty"`
}

// TransactionAssetConfig is the asset configuration specific part of a transaction
type TransactionAssetConfig struct {
	AssetID uint64       `json:"asset-id,omitempty"`
	Params  *AssetParams `json:"params,omitempty"`
}

// TransactionAssetFreeze is the asset freeze specific part of a transaction
type TransactionAssetFreeze struct {
	Address         string `json:"address"`
	AssetID         uint64 `json:"asset-id"`
	NewFreezeStatus bool   `json:"new-freeze-status"`
}

// TransactionApplication is the application call specific part of a transaction
type TransactionApplication struct {
	Accounts          []string     `json:"accounts,omitempty"`
	ApplicationArgs   [][]byte     `json:"application-args,omitempty"`
	ApplicationID     uint64       `json:"application-id"`
	ApprovalProgram   []byte       `json:"approval-program,omitempty"`
	ClearStateProgram []byte       `json:"clear-state-program,omitempty"`
	ExtraProgramPages uint64       `json:"extra-program-pages,omitempty"`
	ForeignApps       []uint64     `json:"foreign-apps,omitempty"`
	ForeignAssets     []uint64     `json:"foreign-assets,omitempty"`
	GlobalStateSchema *StateSchema `json:"global-state-schema,omitempty"`
	LocalStateSchema  *StateSchema `json:"local-state-schema,omitempty"`
	OnCompletion      string       `json:"on-completion,omitempty"`
}

// TransactionKeyreg is the key registration specific part of a transaction
type TransactionKeyreg struct {
	NonParticipation          bool   `json:"non-participation,omitempty"`
	SelectionParticipationKey []byte `json:"selection-participation-key,omitempty"`
	StateProofKey             []byte `json:"state-proof-key,omitempty"`
	VoteFirstValid            Round  `json:"vote-first-valid,omitempty"`
	VoteKeyDilution           uint64 `json:"vote-key-dilution,omitempty"`
	VoteLastValid             Round  `json:"vote-last-valid,omitempty"`
	VoteParticipationKey      []byte `json:"vote-participation-key,omitempty"`
}

// MultisigSubsignature is one key of a multisig account
type MultisigSubsignature struct {
	PublicKey []byte `json:"public-key,omitempty"`
	Signature []byte `json:"signature,omitempty"`
}

// TransactionSignatureMultisig is a multisig signature
type TransactionSignatureMultisig struct {
	Subsignature []MultisigSubsignature `json:"subsignature,omitempty"`
	Threshold    uint64                 `json:"threshold,omitempty"`
	Version      uint64                 `json:"version,omitempty"`
}

// TransactionSignatureLogicsig is a logic signature
type TransactionSignatureLogicsig struct {
	Args              [][]byte                      `json:"args,omitempty"`
	Logic             []byte                        `json:"logic"`
	MultisigSignature *TransactionSignatureMultisig `json:"multisig-signature,omitempty"`
	Signature         []byte                        `json:"signature,omitempty"`
}

// TransactionSignature holds whichever of the three signature kinds signed the transaction
type TransactionSignature struct {
	Logicsig *TransactionSignatureLogicsig `json:"logicsig,omitempty"`
	Multisig *TransactionSignatureMultisig `json:"multisig,omitempty"`
	Sig      []byte                        `json:"sig,omitempty"`
}

// Transaction is a confirmed transaction as returned by the indexer
type Transaction struct {
	ApplicationTransaction   *TransactionApplication   `json:"application-transaction,omitempty"`
	AssetConfigTransaction   *TransactionAssetConfig   `json:"asset-config-transaction,omitempty"`
	AssetFreezeTransaction   *TransactionAssetFreeze   `json:"asset-freeze-transaction,omitempty"`
	AssetTransferTransaction *TransactionAssetTransfer `json:"asset-transfer-transaction,omitempty"`
	AuthAddr                 string                    `json:"auth-addr,omitempty"`
	CloseRewards             uint64                    `json:"close-rewards,omitempty"`
	ClosingAmount            uint64                    `json:"closing-amount,omitempty"`
	ConfirmedRound           Round                     `json:"confirmed-round,omitempty"`
	CreatedApplicationIndex  uint64                    `json:"created-application-index,omitempty"`
	CreatedAssetIndex        uint64                    `json:"created-asset-index,omitempty"`
	Fee                      uint64                    `json:"fee"`
	FirstValid               Round                     `json:"first-valid"`
	GenesisHash              []byte                    `json:"genesis-hash,omitempty"`
	GenesisID                string                    `json:"genesis-id,omitempty"`
	GlobalStateDelta         []EvalDeltaKeyValue       `json:"global-state-delta,omitempty"`
	Group                    []byte                    `json:"group,omitempty"`
	ID                       string                    `json:"id,omitempty"`
	InnerTxns                []Transaction             `json:"inner-txns,omitempty"`
	IntraRoundOffset         uint64                    `json:"intra-round-offset,omitempty"`
	KeyregTransaction        *TransactionKeyreg        `json:"keyreg-transaction,omitempty"`
	LastValid                Round                     `json:"last-valid"`
	Lease                    []byte                    `json:"lease,omitempty"`
	LocalStateDelta          []AccountStateDelta       `json:"local-state-delta,omitempty"`
	Logs                     [][]byte                  `json:"logs,omitempty"`
	Note                     []byte                    `json:"note,omitempty"`
	PaymentTransaction       *TransactionPayment       `json:"payment-transaction,omitempty"`
	ReceiverRewards          uint64                    `json:"receiver-rewards,omitempty"`
	RekeyTo                  string                    `json:"rekey-to,omitempty"`
	RoundTime                int64                     `json:"round-time,omitempty"`
	Sender                   string                    `json:"sender"`
	SenderRewards            uint64                    `json:"sender-rewards,omitempty"`
	Signature                *TransactionSignature     `json:"signature,omitempty"`
	TxType                   TxType                    `json:"tx-type"`
}

// BlockRewards describes the reward state of a block
type BlockRewards struct {
	FeeSink                 string `json:"fee-sink"`
	RewardsCalculationRound Round  `json:"rewards-calculation-round"`
	RewardsLevel            uint64 `json:"rewards-level"`
	RewardsPool             string `json:"rewards-pool"`
	RewardsRate             uint64 `json:"rewards-rate"`
	RewardsResidue          uint64 `json:"rewards-residue"`
}

// BlockUpgradeState describes the consensus upgrade in progress
type BlockUpgradeState struct {
	CurrentProtocol        string `json:"current-protocol"`
	NextProtocol           string `json:"next-protocol,omitempty"`
	NextProtocolApprovals  uint64 `json:"next-protocol-approvals,omitempty"`
	NextProtocolSwitchOn   Round  `json:"next-protocol-switch-on,omitempty"`
	NextProtocolVoteBefore Round  `json:"next-protocol-vote-before,omitempty"`
}

// BlockUpgradeVote is the proposer's upgrade vote
type BlockUpgradeVote struct {
	UpgradeApprove bool   `json:"upgrade-approve,omitempty"`
	UpgradeDelay   uint64 `json:"upgrade-delay,omitempty"`
	UpgradePropose string `json:"upgrade-propose,omitempty"`
}

// Block is a block header and its transactions
type Block struct {
	GenesisHash       []byte             `json:"genesis-hash"`
	GenesisID         string             `json:"genesis-id"`
	PreviousBlockHash []byte             `json:"previous-block-hash"`
	Rewards           *BlockRewards      `json:"rewards,omitempty"`
	Round             Round              `json:"round"`
	Seed              []byte             `json:"seed"`
	Timestamp         int64              `json:"timestamp"`
	Transactions      []Transaction      `json:"transactions,omitempty"`
	TransactionsRoot  []byte             `json:"transactions-root"`
	TxnCounter        uint64             `json:"txn-counter,omitempty"`
	UpgradeState      *BlockUpgradeState `json:"upgrade-state,omitempty"`
	UpgradeVote       *BlockUpgradeVote  `json:"upgrade-vote,omitempty"`
}

// AccountResponse is the result of an account search
type AccountResponse struct {
	Accounts     []Account `json:"accounts"`
	CurrentRound Round     `json:"current-round"`
	NextToken    string    `json:"next-token,omitempty"`
}

// AccountInfoResponse is the result of an account lookup
type AccountInfoResponse struct {
	Account      Account `json:"account"`
	CurrentRound Round   `json:"current-round"`
}

// AccountAssetsResponse lists the assets held by an account
type AccountAssetsResponse struct {
	Assets       []AssetHolding `json:"assets"`
	CurrentRound Round          `json:"current-round"`
	NextToken    string         `json:"next-token,omitempty"`
}

// TransactionResponse is the result of a transaction search
type TransactionResponse struct {
	CurrentRound Round         `json:"current-round"`
	NextToken    string        `json:"next-token,omitempty"`
	Transactions []Transaction `json:"transactions"`
}

// AccountTransactionResponse lists the transactions of an account
type AccountTransactionResponse TransactionResponse

// AssetTransactionResponse lists the transactions of an asset
type AssetTransactionResponse TransactionResponse

// TransactionInfoResponse is the result of a transaction lookup
type TransactionInfoResponse struct {
	CurrentRound Round       `json:"current-round"`
	Transaction  Transaction `json:"transaction"`
}

// ApplicationResponse is the result of an application search
type ApplicationResponse struct {
	Applications []Application `json:"applications"`
	CurrentRound Round         `json:"current-round"`
	NextToken    string        `json:"next-token,omitempty"`
}

// ApplicationInfoResponse is the result of an application lookup
type ApplicationInfoResponse struct {
	Application  *Application `json:"application,omitempty"`
	CurrentRound Round        `json:"current-round"`
}

// AssetResponse is the result of an asset search
type AssetResponse struct {
	Assets       []Asset `json:"assets"`
	CurrentRound Round   `json:"current-round"`
	NextToken    string  `json:"next-token,omitempty"`
}

// AssetsInfoResponse is the result of an asset lookup
type AssetsInfoResponse struct {
	Asset        Asset `json:"asset"`
	CurrentRound Round `json:"current-round"`
}

// BalancesResponse lists the holders of an asset
type BalancesResponse struct {
	Balances     []MiniAssetHolding `json:"balances"`
	CurrentRound Round              `json:"current-round"`
	NextToken    string             `json:"next-token,omitempty"`
}
