package bindings_test

import (
	"github.com/docksock/docksock/pkg/bindings/containers"
	"github.com/docksock/docksock/pkg/bindings/images"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Binding types", func() {
	It("serialize container stop options", func() {
		opts := new(containers.StopOptions).WithTimeout(5)
		params, err := opts.ToParams()
		Expect(err).ToNot(HaveOccurred())
		Expect(params.Get("t")).To(Equal("5"))
	})

	It("serialize container start options", func() {
		opts := new(containers.StartOptions).WithDetachKeys("ctrl-p,ctrl-q")
		params, err := opts.ToParams()
		Expect(err).ToNot(HaveOccurred())
		Expect(params.Get("detachKeys")).To(Equal("ctrl-p,ctrl-q"))
	})

	It("serialize container remove options", func() {
		opts := new(containers.RemoveOptions).WithForce(true).WithIgnore(true).WithVolumes(true)
		params, err := opts.ToParams()
		Expect(err).ToNot(HaveOccurred())
		Expect(params.Get("force")).To(Equal("true"))
		Expect(params.Get("v")).To(Equal("true"))
		Expect(params.Has("ignore")).To(BeFalse())
	})

	It("serialize image list options", func() {
		opts := new(images.ListOptions).WithAll(true).WithFilters(map[string][]string{"reference": {"nginx:latest"}})
		params, err := opts.ToParams()
		Expect(err).ToNot(HaveOccurred())
		Expect(params.Get("all")).To(Equal("true"))
		Expect(params.Get("filters")).To(Equal(`{"reference":["nginx:latest"]}`))
	})
})
