// Package catalog implements the in-memory record engine over a country
// collection: name search and disambiguation, continent and range filters,
// ordering, and aggregate statistics.
//
// All functions are pure or mutate only the slice they are given; none of them
// perform I/O.
package catalog
