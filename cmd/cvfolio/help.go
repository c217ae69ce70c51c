package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cvfolio <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  export     Export CV share paths to PDF")
	fmt.Fprintln(w, "  resolve    Resolve a share path (edition, stamp, status)")
	fmt.Fprintln(w, "  stamp      Print the version stamp of a CV data file")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'cvfolio help <command>' for details on a specific command.")
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cvfolio export [paths...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export CV share paths to paginated A4 PDF files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  paths    Share paths like /, /e/acme, /e/acme/v/AB12CD (default: /)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --all               Export the default and every configured edition")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -d, --data <loc>        Data directory or http(s) base URL")
	fmt.Fprintln(w, "  -b, --base-url <url>    Canonical share base URL for footer links")
	fmt.Fprintln(w, "  -o, --out <dir>         Output directory")
	fmt.Fprintln(w, "      --date <s>          Generation date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                          Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                          Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "  -w, --workers <n>       Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --html-only         Skip rasterization, write the print HTML")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show detailed timing")
}

// printResolveUsage prints usage for the resolve command.
func printResolveUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cvfolio resolve [path] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resolve a share path: load its document, compute the version stamp,")
	fmt.Fprintln(w, "and report the version status and canonical share URL.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -d, --data <loc>        Data directory or http(s) base URL")
	fmt.Fprintln(w, "  -b, --base-url <url>    Canonical share base URL")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "export":
		printExportUsage(env.Stdout)
	case "resolve":
		printResolveUsage(env.Stdout)
	case "stamp":
		fmt.Fprintln(env.Stdout, "Usage: cvfolio stamp <cv-data.json>")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the 6-character version stamp of a CV data file.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: cvfolio version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: cvfolio help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
