// Package main hosts the srtcheck CLI entrypoint and command graph.
//
// The Cobra command tree maps terminal invocations onto the internal
// packages: validate runs the structural validator, diff assembles and
// renders a per-entry report, analyze runs the pattern table over one file,
// and config scaffolds or prints the configuration. Configuration resolution
// and logger setup live in commandContext so subcommands only parse flags and
// pick a renderer.
//
// Keep this package lean: behavior belongs in internal packages and is only
// surfaced here.
package main
