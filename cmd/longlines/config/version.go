package config

// Version is set at build time with -ldflags.
var Version = "development"
