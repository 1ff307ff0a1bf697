// Package convert moves GBLN values to and from plain Go data, JSON and
// YAML.
//
// JSON and YAML have no integer widths or string bounds, so a value sent
// through either comes back with default widths. Key order survives.
package convert
