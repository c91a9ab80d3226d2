// Package config defines the launcher's configuration model and its HCL
// loader.
//
// Configuration comes from an optional `progdeck.hcl` file; every field has
// a sensible default so the launcher runs with no file at all. Path values
// in the file are HCL expressions evaluated against a small set of
// variables (`home`, `config_dir`), so a store can be pinned under the
// user's home directory without hardcoding it.
package config
