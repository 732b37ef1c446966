package internal

// Version is the kirlot release version.
const Version = "0.3.0"
