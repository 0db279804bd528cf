// Package edgefile parses the flat-text edge format consumed by costpath.
//
// Format: UTF-8/ASCII text, one record per line, four fields separated by ';':
//
//	<fromName>;<toName>;<forwardCostOrNA>;<backwardCostOrNA>
//
// Example:
//
//	A;B;10;N/A
//
// describes an edge A→B with weight 10 and no edge B→A. The literal marker
// "N/A" (NotApplicable) means "no edge in this direction".
//
// Responsibilities:
//
//   - Split lines and enforce the exact field count of four.
//   - Report malformed lines with their 1-based line number and whether the
//     line has too few or too many fields (*LineError, ErrMalformedRecord).
//   - Wrap I/O failures with ErrUnreadable.
//
// Cost fields are kept verbatim. Whether a cost is a valid integer is decided
// by digraph.Build, which reports ErrCostNotNumeric without a line number:
// this package is the only layer that knows about lines.
package edgefile
