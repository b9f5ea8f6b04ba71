package harness_test

import (
	"context"
	"net/http"

	"github.com/docksock/docksock/pkg/harness"
	"github.com/docksock/docksock/test/utils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Harness images", func() {
	var (
		daemon *utils.Daemon
		conn   context.Context
	)

	BeforeEach(func() {
		daemon, conn = newDaemonConnection()
	})

	AfterEach(func() {
		Expect(daemon.Stop()).To(Succeed())
	})

	It("finds images by reference", func() {
		daemon.AddImage(alpine)

		summaries, err := harness.FindImages(conn, alpine)
		Expect(err).ToNot(HaveOccurred())
		Expect(summaries).To(HaveLen(1))

		summaries, err = harness.FindImages(conn, "ghost:latest")
		Expect(err).ToNot(HaveOccurred())
		Expect(summaries).To(BeEmpty())
	})

	It("ensure pulls only a missing image", func() {
		daemon.AddImage(alpine)
		Expect(harness.EnsureImage(conn, alpine)).To(Succeed())
		Expect(daemon.RequestsFor("/images/create")).To(BeEmpty())

		Expect(harness.EnsureImage(conn, "redis:7")).To(Succeed())
		Expect(daemon.RequestsFor("/images/create")).To(HaveLen(1))
	})

	It("ensure shrugs off a failing pull", func() {
		daemon.RespondWith(http.MethodPost, "/images/create", http.StatusInternalServerError, `{"message":"registry is down"}`)

		Expect(harness.EnsureImage(conn, alpine)).To(Succeed())
		Expect(daemon.RequestsFor("/images/create")).To(HaveLen(1))
	})

	It("pull propagates daemon failures", func() {
		daemon.RespondWith(http.MethodPost, "/images/create", http.StatusInternalServerError, `{"message":"registry is down"}`)

		err := harness.PullImage(conn, alpine)
		Expect(err).To(MatchError(ContainSubstring("registry is down")))
	})
})
