package system

//go:generate go run ../generator/generator.go VersionOptions
// VersionOptions are optional options for getting version info
type VersionOptions struct {
}
