// Package commands implements the termai subcommands.
package commands

// TimestampFormat is used for human-readable record listings.
const TimestampFormat = "2006-01-02 15:04:05"
