package utils_test

import (
	"context"
	"net/http"

	"github.com/docksock/docksock/pkg/bindings"
	"github.com/docksock/docksock/pkg/bindings/images"
	"github.com/docksock/docksock/pkg/bindings/system"
	"github.com/docksock/docksock/test/utils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fake daemon", func() {
	var (
		daemon *utils.Daemon
		ctx    context.Context
	)

	BeforeEach(func() {
		var err error
		daemon, err = utils.NewDaemon(GinkgoT().TempDir())
		Expect(err).ToNot(HaveOccurred())
		ctx, err = bindings.NewConnection(context.Background(), daemon.URI())
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		Expect(daemon.Stop()).To(Succeed())
	})

	It("answers a ping and journals every request", func() {
		Expect(system.Ping(ctx)).To(Succeed())
		// Establishing the connection pinged once already.
		Expect(daemon.RequestsFor("/_ping")).To(HaveLen(2))
	})

	It("reports its version", func() {
		report, err := system.Version(ctx, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(report.APIVersion).To(Equal("1.41"))
		Expect(report.Version).ToNot(BeEmpty())
	})

	It("serves canned responses instead of the normal handler", func() {
		daemon.RespondWith(http.MethodGet, "/_ping", http.StatusInternalServerError, `{"message":"boom"}`)
		err := system.Ping(ctx)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("boom"))
	})

	It("filters seeded images by reference", func() {
		daemon.AddImage("nginx:latest")
		daemon.AddImage("redis:7")

		options := new(images.ListOptions).WithFilters(map[string][]string{"reference": {"nginx:latest"}})
		summaries, err := images.List(ctx, options)
		Expect(err).ToNot(HaveOccurred())
		Expect(summaries).To(HaveLen(1))
		Expect(summaries[0].RepoTags).To(ContainElement("nginx:latest"))
	})

	It("answers unknown routes with a not found error", func() {
		conn, err := bindings.GetClient(ctx)
		Expect(err).ToNot(HaveOccurred())
		response, err := conn.DoRequest(ctx, nil, http.MethodGet, "/no/such/route", nil, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(response.Process(nil)).To(MatchError(ContainSubstring("page not found")))
	})
})
