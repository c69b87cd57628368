// Package catalog keeps one range-energy model per (ion, material) pair.
//
// Models are built on first use from the table files a [table.Loader] can
// reach and are cached, optionally with an expiry, so repeated filter
// calculations reuse the same integration. Failed loads are not cached.
package catalog
