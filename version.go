package chempath

// Version is the semantic version of the library and CLI.
var Version = "0.1.0"
