package vimv

// Set by ldflags: -X github.com/sokinpui/vimv.Version={{.Version}}
var Version = "dev"
