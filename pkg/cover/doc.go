// Package cover renders the single-page submittal cover.
//
// The page is a fixed raster template with the project name and date
// centered over it and an optional customer logo fit into the bottom-right
// corner. Rendering is deterministic: identical inputs produce identical
// bytes.
package cover
