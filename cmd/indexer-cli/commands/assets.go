package commands

import (
	"github.com/spf13/cobra"

	"github.com/feral-file/ff-algorand-indexer/internal/providers/algorand"
)

func assetsCmd() *cobra.Command {
	var (
		page    pageFlags
		assetID uint64
		creator string
		name    string
		unit    string
	)

	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Search for assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := idx.Assets(cmd.Context(), &algorand.QueryAssets{
				AssetID:    optUint64(cmd, "asset-id", assetID),
				Creator:    creator,
				IncludeAll: page.includeAll,
				Limit:      page.limitPtr(cmd),
				Name:       name,
				Next:       page.next,
				Unit:       unit,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	page.register(cmd)
	cmd.Flags().Uint64Var(&assetID, "asset-id", 0, "Only this asset")
	cmd.Flags().StringVar(&creator, "creator", "", "Only assets created by this address")
	cmd.Flags().StringVar(&name, "name", "", "Only assets whose name matches")
	cmd.Flags().StringVar(&unit, "unit", "", "Only assets whose unit name matches")
	return cmd
}

func assetCmd() *cobra.Command {
	var includeAll bool

	cmd := &cobra.Command{
		Use:   "asset <id>",
		Short: "Look up an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("asset", args[0])
			if err != nil {
				return err
			}
			resp, err := idx.AssetsInfo(cmd.Context(), id, &algorand.QueryAssetsInfo{IncludeAll: includeAll})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().BoolVar(&includeAll, "include-all", false, "Include a destroyed asset")
	return cmd
}

func assetBalancesCmd() *cobra.Command {
	var (
		page    pageFlags
		greater uint64
		less    uint64
	)

	cmd := &cobra.Command{
		Use:   "asset-balances <id>",
		Short: "List the accounts holding an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("asset", args[0])
			if err != nil {
				return err
			}
			resp, err := idx.AssetBalances(cmd.Context(), id, &algorand.QueryBalances{
				CurrencyGreaterThan: optUint64(cmd, "currency-greater-than", greater),
				CurrencyLessThan:    optUint64(cmd, "currency-less-than", less),
				IncludeAll:          page.includeAll,
				Limit:               page.limitPtr(cmd),
				Next:                page.next,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	page.register(cmd)
	cmd.Flags().Uint64Var(&greater, "currency-greater-than", 0, "Only holders with more than this amount")
	cmd.Flags().Uint64Var(&less, "currency-less-than", 0, "Only holders with less than this amount")
	return cmd
}

func assetTransactionsCmd() *cobra.Command {
	var (
		txn            txnFlags
		address        string
		addressRole    string
		excludeCloseTo bool
	)

	cmd := &cobra.Command{
		Use:   "asset-transactions <id>",
		Short: "List the transactions of an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("asset", args[0])
			if err != nil {
				return err
			}
			after, before, err := txn.times()
			if err != nil {
				return err
			}
			resp, err := idx.AssetTransactions(cmd.Context(), id, &algorand.QueryAssetTransaction{
				Address:             address,
				AddressRole:         algorand.AddressRole(addressRole),
				AfterTime:           after,
				BeforeTime:          before,
				CurrencyGreaterThan: optUint64(cmd, "currency-greater-than", txn.greater),
				CurrencyLessThan:    optUint64(cmd, "currency-less-than", txn.less),
				ExcludeCloseTo:      excludeCloseTo,
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
	cmd.Flags().StringVar(&address, "address", "", "Only transactions involving this address")
	cmd.Flags().StringVar(&addressRole, "address-role", "", "Role of --address (sender, receiver, freeze-target)")
	cmd.Flags().BoolVar(&excludeCloseTo, "exclude-close-to", false, "Ignore close-to fields when matching --address")
	return cmd
}
