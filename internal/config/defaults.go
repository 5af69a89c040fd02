// Package config provides configuration loading and defaults for scanready.
package config

// DefaultProjectPaths are the default project roots to validate when none
// are given on the command line.
var DefaultProjectPaths = []string{"."}

// DefaultConfigDir is the default location for scanready configuration.
const DefaultConfigDir = "~/.config/scanready"

// DefaultDBName is the filename for the SQLite history database.
const DefaultDBName = "scanready.db"

// DefaultPropertiesFile is the scanner configuration file name looked up
// relative to each project root.
const DefaultPropertiesFile = "sonar-project.properties"

// DefaultResolveTimeoutSeconds bounds the optional build-tool dependency
// resolution call.
const DefaultResolveTimeoutSeconds = 30

// DefaultWatchIntervalSeconds is how often the watch command re-validates.
const DefaultWatchIntervalSeconds = 30

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
