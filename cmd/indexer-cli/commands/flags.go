package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/feral-file/ff-algorand-indexer/internal/providers/algorand"
)

// pageFlags are shared by every search command
type pageFlags struct {
	limit      uint64
	next       string
	includeAll bool
}

func (f *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&f.limit, "limit", 0, "Maximum number of results to return")
	cmd.Flags().StringVar(&f.next, "next", "", "Pagination token from a previous response")
	cmd.Flags().BoolVar(&f.includeAll, "include-all", false, "Include deleted and closed entities")
}

func (f *pageFlags) limitPtr(cmd *cobra.Command) *uint64 {
	return optUint64(cmd, "limit", f.limit)
}

// txnFlags are shared by every transaction search command
type txnFlags struct {
	pageFlags
	minRound   uint64
	maxRound   uint64
	round      uint64
	afterTime  string
	beforeTime string
	txType     string
	sigType    string
	txID       string
	notePrefix string
	rekeyTo    bool
	greater    uint64
	less       uint64
}

func (f *txnFlags) register(cmd *cobra.Command) {
	f.pageFlags.register(cmd)
	cmd.Flags().Uint64Var(&f.minRound, "min-round", 0, "Only transactions at or after this round")
	cmd.Flags().Uint64Var(&f.maxRound, "max-round", 0, "Only transactions at or before this round")
	cmd.Flags().Uint64Var(&f.round, "round", 0, "Only transactions in this round")
	cmd.Flags().StringVar(&f.afterTime, "after-time", "", "Only transactions after this RFC 3339 time")
	cmd.Flags().StringVar(&f.beforeTime, "before-time", "", "Only transactions before this RFC 3339 time")
	cmd.Flags().StringVar(&f.txType, "tx-type", "", "Transaction type (pay, keyreg, acfg, axfer, afrz, appl, stpf, hb)")
	cmd.Flags().StringVar(&f.sigType, "sig-type", "", "Signature type (sig, msig, lsig)")
	cmd.Flags().StringVar(&f.txID, "txid", "", "Transaction id")
	cmd.Flags().StringVar(&f.notePrefix, "note-prefix", "", "Base64 encoded note prefix")
	cmd.Flags().BoolVar(&f.rekeyTo, "rekey-to", false, "Only rekey transactions")
	cmd.Flags().Uint64Var(&f.greater, "currency-greater-than", 0, "Only transactions moving more than this amount")
	cmd.Flags().Uint64Var(&f.less, "currency-less-than", 0, "Only transactions moving less than this amount")
}

func (f *txnFlags) times() (time.Time, time.Time, error) {
	after, err := parseTime("after-time", f.afterTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	before, err := parseTime("before-time", f.beforeTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return after, before, nil
}

// optUint64 returns nil unless the flag was set on the command line, so zero stays expressible
func optUint64(cmd *cobra.Command, name string, value uint64) *uint64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func optRound(cmd *cobra.Command, name string, value uint64) *algorand.Round {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	r := algorand.Round(value)
	return &r
}

func parseTime(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return t, nil
}

func parseID(kind, arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q: %w", kind, arg, err)
	}
	return id, nil
}
