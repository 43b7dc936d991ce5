// Package trackline holds module-wide metadata.
package trackline

// Version is the trackline release version.
const Version = "0.1.0"
