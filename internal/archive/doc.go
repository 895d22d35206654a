// Package archive packs batch output bundles into ZIP archives.
package archive
