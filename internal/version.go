package internal

// Version is the phonconv release, overridden at build time with
// -ldflags "-X codeberg.org/snonux/phonconv/internal.Version=..."
var Version = "0.3.0"
