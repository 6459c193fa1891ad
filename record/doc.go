// Package record implements the ordered key/value records that feed a grid.
//
// Go maps have no stable key order, so records keep their fields as an
// ordered slice. Loaders for JSON, YAML, CSV and XLSX preserve the key order
// found in the source document.
package record
