package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/feral-file/ff-algorand-indexer/internal/providers/algorand"
)

func transactionsCmd() *cobra.Command {
	var (
		txn            txnFlags
		address        string
		addressRole    string
		excludeCloseTo bool
		applicationID  uint64
		assetID        uint64
	)

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Search for transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			after, before, err := txn.times()
			if err != nil {
				return err
			}
			resp, err := idx.Transactions(cmd.Context(), &algorand.QueryTransaction{
				Address:             address,
				AddressRole:         algorand.AddressRole(addressRole),
				AfterTime:           after,
				ApplicationID:       optUint64(cmd, "application-id", applicationID),
				AssetID:             optUint64(cmd, "asset-id", assetID),
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
	cmd.Flags().Uint64Var(&applicationID, "application-id", 0, "Only calls to this application")
	cmd.Flags().Uint64Var(&assetID, "asset-id", 0, "Only transactions of this asset")
	return cmd
}

func transactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transaction <txid>",
		Short: "Look up a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := idx.TransactionInfo(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

func blockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "block <round>",
		Short: "Look up a block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			round, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}
			resp, err := idx.Block(cmd.Context(), algorand.Round(round))
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}
