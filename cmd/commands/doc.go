// Package commands defines the swiftkit CLI and wires the payment service for
// subcommands.
//
// Commands
//
//   - serve            Run the HTTP API
//   - validate-bic     Check a BIC and print its fields
//   - validate-iban    Check an IBAN and print its fields
//   - generate-pain001 Build a pain.001 credit transfer initiation
//   - generate-mt103   Build an MT103 customer transfer
//   - batch-validate   Check a file of BICs or IBANs
//   - version          Print the version
//
// Every command exits with status 1 when an identifier or a message is
// rejected, so the CLI can gate shell pipelines.
package commands
