// Package buildinfo holds the version stamped into release binaries with
//
//	go build -ldflags "-X github.com/matzehuels/chartlabel/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/chartlabel/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/chartlabel/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

// Overwritten at link time; the defaults mark a local build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the build stamp reported by `chartlabel --version` and GET /healthz.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// Template is the cobra version template.
func Template() string {
	i := Get()
	return "{{.Name}} " + i.Version + " (" + i.Commit + ", built " + i.Date + ")\n"
}
