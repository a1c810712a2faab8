// Package model defines the shared value types of the interaction engine:
// chart-local positions, the plottable chart area and the axis restriction
// applied to queries and distance metrics.
package model
