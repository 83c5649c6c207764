package main

// _version is the version of snippet.
// Overridden at release time with -ldflags.
var _version = "0.1.0-dev"
