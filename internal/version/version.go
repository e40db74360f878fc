package version

// Version is stamped at release time via -ldflags "-X ...".
var Version = "0.3.0-dev"
