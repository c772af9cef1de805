// Command przepisnik is a terminal client for the recipe book backend.
//
// Without a subcommand it starts the interactive TUI. The subcommands
// cover the same operations for scripts: list, show, cook, delete,
// add-photo and tags. Listing commands accept --json.
package main
