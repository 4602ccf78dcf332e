// Package cli implements the ptop command-line interface.
//
// # Command Structure
//
//	ptop                - Run the process and memory dashboard
//	ptop config         - Print the effective configuration as YAML
//	ptop version        - Print version information
//	ptop completion     - Generate shell completion scripts
//
// Dashboard settings are persistent flags on the root command, so
// "ptop config --interval 2s" shows exactly what "ptop --interval 2s" would
// run with. Flags override PTOP_* environment variables, which override the
// config file.
package cli
