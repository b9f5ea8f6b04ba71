package entities

// VersionReport is the daemon's description of itself.
type VersionReport struct {
	Version       string `json:",omitempty"`
	APIVersion    string `json:"ApiVersion,omitempty"`
	MinAPIVersion string `json:",omitempty"`
	GitCommit     string `json:",omitempty"`
	GoVersion     string `json:",omitempty"`
	Os            string `json:",omitempty"`
	Arch          string `json:",omitempty"`
	KernelVersion string `json:",omitempty"`
	BuildTime     string `json:",omitempty"`
}
