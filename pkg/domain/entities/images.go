package entities

// ImageSummary is one entry of the daemon's image listing.
type ImageSummary struct {
	ID          string            `json:"Id"`
	ParentId    string            `json:",omitempty"` //nolint
	RepoTags    []string          `json:",omitempty"`
	RepoDigests []string          `json:",omitempty"`
	Created     int64             `json:",omitempty"`
	Size        int64             `json:",omitempty"`
	SharedSize  int64             `json:",omitempty"`
	VirtualSize int64             `json:",omitempty"`
	Labels      map[string]string `json:",omitempty"`
	Containers  int               `json:",omitempty"`
}

func (i *ImageSummary) Id() string { //nolint
	return i.ID
}
