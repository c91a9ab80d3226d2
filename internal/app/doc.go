// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary lifecycle: build the logger,
// load the launcher config, register built-in programs, discover drop-in
// programs, then hand the catalog to the menu driver. It is decoupled from
// any specific entrypoint like the CLI.
package app
