// Package render formats validation results, diff reports and analysis
// findings for people and tools.
//
// Terminal output follows the layout operators already script against
// ("Found N text changes:", "[idx] timing", "- original", "+ corrected").
// Color is applied through fatih/color only when the caller asks for it,
// which the CLI decides with go-isatty. Summary tables use go-pretty. HTML
// reports are a single self-contained html/template document and JSON output
// is indented encoding/json.
package render
