// Package organizer orchestrates suggestion runs against the recipe
// server: auto-categorizing recipes, scanning for and applying tags, and
// importing category lists.
//
// Runs are sequential and resilient: a failure on one recipe is logged
// and skipped while the rest of the run continues, and a processing limit
// leaves unexamined recipes pending. Fatal errors are reserved for the
// initial catalog fetches, without which no run can proceed.
package organizer
