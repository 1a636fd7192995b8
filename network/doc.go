// Package network seeds a core.Graph from a YAML network description and
// provides the short station codes used by the console front-end.
//
// The embedded default is the 20-station Delhi Metro reference network
// (lines B, Y, O, P, R). A network file looks like:
//
//	name: Delhi Metro
//	stations:
//	  - Rajiv Chowk~BY
//	  - New Delhi~YO
//	connections:
//	  - {from: Rajiv Chowk~BY, to: New Delhi~YO, km: 1}
//
// Station codes:
//
//	Code("Noida Sector 62~B") == "NS62"   // leading digits are kept
//	Code("Saket~Y")           == "SA"     // one-letter codes borrow the second letter
//
// Errors:
//
//	ErrUnknownStation      - a connection or lookup names an undeclared station
//	ErrDuplicateConnection - the same pair is connected twice
//	ErrBadIndex            - a 1-based index is outside the station list
//	ErrBadLookup           - unsupported lookup mode
package network
