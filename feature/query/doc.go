// Package query answers interactive inventory lookups.
//
// A query is two whitespace separated terms, a manufacturer and an item type.
// FindBestAndAlternative picks the most expensive item that is in service, not
// damaged, and matches both terms as case insensitive substrings. It also
// suggests the most expensive item of another manufacturer whose type equals the
// type term exactly (case insensitive).
//
// Session wraps the engine in a prompt loop:
//
//	AwaitingInput -> Parsed -> Queried -> (result | no match) -> AwaitingInput
//
// Lines that are not exactly two terms are rejected without querying. The loop
// ends on "q" or end of input. Query errors are reported and the loop continues.
package query
