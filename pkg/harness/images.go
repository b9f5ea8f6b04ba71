package harness

import (
	"context"

	"github.com/docksock/docksock/pkg/bindings/images"
	"github.com/docksock/docksock/pkg/domain/entities"
	"github.com/sirupsen/logrus"
)

// PullImage pulls imageRef through the daemon.  The call blocks until the
// daemon has worked through the whole pull.
func PullImage(ctx context.Context, imageRef string) error {
	return images.Pull(ctx, imageRef, nil)
}

// FindImages lists the local images matching imageRef, e.g. "nginx:latest".
func FindImages(ctx context.Context, imageRef string) ([]*entities.ImageSummary, error) {
	options := new(images.ListOptions).WithFilters(map[string][]string{"reference": {imageRef}})
	return images.List(ctx, options)
}

// EnsureImage pulls imageRef when no local image matches it.  A failed pull
// is logged, not returned; whether the image is actually usable is settled
// by whoever creates a container from it.
func EnsureImage(ctx context.Context, imageRef string) error {
	summaries, err := FindImages(ctx, imageRef)
	if err != nil {
		return err
	}
	if len(summaries) > 0 {
		return nil
	}
	if err := PullImage(ctx, imageRef); err != nil {
		logrus.Warnf("Unable to pull image %q: %v", imageRef, err)
	}
	return nil
}
