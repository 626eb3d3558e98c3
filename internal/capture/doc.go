// Package capture turns hex text into decoded frames.
//
// Input is either one blob of text (command-line arguments or stdin) or a
// capture log read line by line. Each chunk of text is reduced to bytes with
// protocol.ParseHexBytes and then decoded according to a Policy:
//
//   - direct: the bytes must start with a frame
//   - extract: every candidate frame found in the bytes is decoded
//   - fallback: for a single blob, direct first and extract on failure;
//     for a log line, extract first and a direct attempt when no candidate
//     was found, so the failure is still reported
//
// Every decode attempt yields a Result. Stats accumulates counts across
// Results for the stats command.
package capture
