package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fontbundle [command] [flags] [input.css]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  bundle     Embed font references as data URIs (default)")
	fmt.Fprintln(w, "  doctor     Check the environment for a bundling run")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'fontbundle help <command>' for details on a specific command.")
}

// printBundleUsage prints usage for the bundle command.
func printBundleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fontbundle bundle [flags] [input.css]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite a stylesheet so font references become embedded data URIs.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input.css    Stylesheet to bundle (default: katex.min.css)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output stylesheet path (default: katex-bundled.css)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --cache-dir <dir>     Local font cache directory (default: fonts)")
	fmt.Fprintln(w, "      --base-url <url>      Remote base URL fonts are fetched from")
	fmt.Fprintln(w, "      --user-agent <s>      User-Agent header for downloads")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Download timeout (e.g., 30s, 2m; default: none)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             List skipped references in the summary")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "bundle":
		printBundleUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: fontbundle doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check input stylesheet, font cache, and remote reachability.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: fontbundle version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: fontbundle help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
