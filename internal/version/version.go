package version

// Version se sobreescribe en el build con -ldflags
var Version = "dev"
