package commands

import (
	"github.com/spf13/cobra"

	"github.com/feral-file/ff-algorand-indexer/internal/providers/algorand"
)

func accountsCmd() *cobra.Command {
	var (
		page          pageFlags
		applicationID uint64
		assetID       uint64
		authAddr      string
		greater       uint64
		less          uint64
		round         uint64
		exclude       []string
	)

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Search for accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := idx.Accounts(cmd.Context(), &algorand.QueryAccount{
				ApplicationID:       optUint64(cmd, "application-id", applicationID),
				AssetID:             optUint64(cmd, "asset-id", assetID),
				AuthAddr:            authAddr,
				CurrencyGreaterThan: optUint64(cmd, "currency-greater-than", greater),
				CurrencyLessThan:    optUint64(cmd, "currency-less-than", less),
				Exclude:             exclude,
				IncludeAll:          page.includeAll,
				Limit:               page.limitPtr(cmd),
				Next:                page.next,
				Round:               optRound(cmd, "round", round),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	page.register(cmd)
	cmd.Flags().Uint64Var(&applicationID, "application-id", 0, "Only accounts opted into this application")
	cmd.Flags().Uint64Var(&assetID, "asset-id", 0, "Only accounts holding this asset")
	cmd.Flags().StringVar(&authAddr, "auth-addr", "", "Only accounts rekeyed to this address")
	cmd.Flags().Uint64Var(&greater, "currency-greater-than", 0, "Only accounts with a balance above this amount")
	cmd.Flags().Uint64Var(&less, "currency-less-than", 0, "Only accounts with a balance below this amount")
	cmd.Flags().Uint64Var(&round, "round", 0, "Account state at this round")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Exclude these sub-resources (all, assets, created-assets, apps-local-state, created-apps, none)")
	return cmd
}

func accountCmd() *cobra.Command {
	var (
		includeAll bool
		round      uint64
		exclude    []string
	)

	cmd := &cobra.Command{
		Use:   "account <address>",
		Short: "Look up an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := algorand.DecodeAddress(args[0])
			if err != nil {
				return err
			}
			resp, err := idx.AccountInfo(cmd.Context(), address, &algorand.QueryAccountInfo{
				Exclude:    exclude,
				IncludeAll: includeAll,
				Round:      optRound(cmd, "round", round),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().BoolVar(&includeAll, "include-all", false, "Include deleted and closed entities")
	cmd.Flags().Uint64Var(&round, "round", 0, "Account state at this round")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Exclude these sub-resources")
	return cmd
}

func accountAssetsCmd() *cobra.Command {
	var (
		page    pageFlags
		assetID uint64
	)

	cmd := &cobra.Command{
		Use:   "account-assets <address>",
		Short: "List the assets held by an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := algorand.DecodeAddress(args[0])
			if err != nil {
				return err
			}
			resp, err := idx.AccountAssets(cmd.Context(), address, &algorand.QueryAccountAssetsInfo{
				AssetID:    optUint64(cmd, "asset-id", assetID),
				IncludeAll: page.includeAll,
				Limit:      page.limitPtr(cmd),
				Next:       page.next,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	page.register(cmd)
	cmd.Flags().Uint64Var(&assetID, "asset-id", 0, "Only this asset")
	return cmd
}

func accountTransactionsCmd() *cobra.Command {
	var (
		txn     txnFlags
		assetID uint64
	)

	cmd := &cobra.Command{
		Use:   "account-transactions <address>",
		Short: "List the transactions of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := algorand.DecodeAddress(args[0])
			if err != nil {
				return err
			}
			after, before, err := txn.times()
			if err != nil {
				return err
			}
			resp, err := idx.AccountTransactions(cmd.Context(), address, &algorand.QueryAccountTransaction{
				AfterTime:           after,
				AssetID:             optUint64(cmd, "asset-id", assetID),
				BeforeTime:          before,
				CurrencyGreaterThan: optUint64(cmd, "currency-greater-than", txn.greater),
				CurrencyLessThan:    optUint64(cmd, "currency-less-than", txn.less),
				Limit:               txn.limitPtr(cmd),
				MaxRound:            optRound(cmd, "max-round", txn.maxRound),
				MinRound:            optRound(cmd, "min-round", txn.minRound),
				Next:                txn.next,
				NotePrefix:          txn.notePrefix,
				RekeyTo:             txn.rekeyTo,
				Round:               optRound(cmd, "round", txn.round),
				SigType:             algorand.SigType(txn.sigType),
				TxType:              algorand.TxType(txn.txType),
				TxID:                txn.txID,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	txn.register(cmd)
	cmd.Flags().Uint64Var(&assetID, "asset-id", 0, "Only transactions of this asset")
	return cmd
}
