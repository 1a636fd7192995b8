// Package interchange annotates a route with the points where a rider has to
// change lines.
//
// A route is a sequence of station names whose line codes follow the '~'
// separator ("Rajiv Chowk~BY" serves lines B and Y). Analyze walks the
// interior stations of the route:
//
//   - A station that serves exactly two lines, and whose previous and next
//     stations serve identical line sets, is ridden through: it is kept as an
//     ordinary waypoint.
//   - Any other two-line station is an interchange. It is emitted as the
//     marker "<station> ==> <next>", the next station is consumed by the
//     marker, and the interchange count grows by one.
//   - Every other station is kept as an ordinary waypoint.
//
// The first station is always emitted; the last one is emitted unless an
// interchange marker already consumed it.
//
// Parse and Interchanges accept the double-space-delimited route strings
// produced by dfs.Path.Format, whose trailing token is the distance or time
// figure; that figure is carried through as Report.Total.
package interchange
