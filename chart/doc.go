// Package chart holds the read-only chart state the interaction engine
// queries: per-dataset metadata, index-scale descriptors and visibility.
//
// The engine treats all of this as an immutable snapshot; mutation (legend
// toggles, data updates) happens between interaction calls, owned by the
// surrounding controller.
package chart
