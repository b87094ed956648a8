// Package dlxcc implements Algorithm C (Knuth, TAOCP 7.2.2.1): exact
// covering with colors via dancing links.
//
// Items are partitioned into primary items, which must be covered exactly
// once, and secondary items, which may be covered at most once per color.
// A problem is built from an ordered list of items and an ordered list of
// named subsets ("options"), each a list of constraints on those items; the
// solver then finds assignments of subsets that cover every primary item
// exactly once without two subsets disagreeing on a secondary item's color.
package dlxcc
