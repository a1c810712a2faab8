// Package element defines the geometry capability every visual data element
// exposes to the interaction engine, together with the point and bar shapes.
//
// The engine never constructs or mutates elements; it only asks them for
// containment, center and spread.
package element
