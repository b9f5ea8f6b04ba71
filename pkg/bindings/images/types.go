package images

//go:generate go run ../generator/generator.go ListOptions
// ListOptions are optional options for listing images
type ListOptions struct {
	// All lists every image, including intermediate layers
	All *bool
	// Filters to narrow down the listing, e.g. a reference filter
	Filters map[string][]string
}

//go:generate go run ../generator/generator.go PullOptions
// PullOptions are optional options for pulling images
type PullOptions struct {
	// Platform picks one platform, e.g. "linux/arm64", out of a
	// multi-arch image
	Platform *string
}
