// Package buildinfo holds release metadata stamped at link time, e.g.
//
//	go build -ldflags "-X github.com/aidanlsb/paramz/internal/buildinfo.Version=v0.3.0"
//
// Local builds leave every value empty.
package buildinfo

var (
	Version = ""
	Commit  = ""
	Date    = ""
)
