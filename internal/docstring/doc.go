// Package docstring renders object docstrings to HTML fragments.
//
// Rendering runs in three stages:
//   - Clean normalizes line endings and strips the indentation that
//     docstrings inherit from the surrounding source
//   - a Renderer for the docformat turns the text into HTML
//     ("markdown" through goldmark, "plaintext" as an escaped block)
//   - Summary extracts the first block of the rendered HTML for
//     index pages and member tables
package docstring
