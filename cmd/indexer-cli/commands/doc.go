// Package commands defines the indexer-cli command tree.
//
// Commands
//
//   - health                           Check the indexer health endpoint
//   - accounts                         Search for accounts
//   - account <address>                Look up an account
//   - account-assets <address>         List the assets held by an account
//   - account-transactions <address>   List the transactions of an account
//   - applications                     Search for applications
//   - application <id>                 Look up an application
//   - assets                           Search for assets
//   - asset <id>                       Look up an asset
//   - asset-balances <id>              List the holders of an asset
//   - asset-transactions <id>          List the transactions of an asset
//   - block <round>                    Look up a block
//   - transactions                     Search for transactions
//   - transaction <txid>               Look up a transaction
//
// The root command loads configuration, initializes the logger and builds the
// indexer facade before any subcommand runs. Responses are printed to stdout
// as indented JSON, or as RFC 8785 canonical JSON with --output canonical.
// Logs go to stderr.
package commands
