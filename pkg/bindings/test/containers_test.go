package bindings_test

import (
	"net/http"
	"net/url"

	"github.com/docker/go-connections/nat"
	"github.com/docksock/docksock/pkg/bindings"
	"github.com/docksock/docksock/pkg/bindings/containers"
	"github.com/docksock/docksock/pkg/specgen"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Docksock containers", func() {
	var bt *bindingTest

	BeforeEach(func() {
		bt = newBindingTest()
		Expect(bt.NewConnection()).To(Succeed())
	})

	AfterEach(func() {
		bt.cleanup()
	})

	// startedContainer seeds the image and runs the create plus start
	// steps the way the composites do.
	startedContainer := func(name string) string {
		bt.daemon.AddImage(alpine)
		s := specgen.NewSpecGenerator(alpine)
		port, err := nat.NewPort("tcp", "80")
		Expect(err).ToNot(HaveOccurred())
		s.WithPortBinding(port, 8080)

		response, err := containers.CreateWithSpec(bt.conn, s, new(containers.CreateOptions).WithName(name))
		Expect(err).ToNot(HaveOccurred())
		Expect(containers.Start(bt.conn, response.ID, nil)).To(Succeed())
		return response.ID
	}

	It("create sends the port binding shape verbatim", func() {
		bt.daemon.AddImage(alpine)
		s := specgen.NewSpecGenerator(alpine)
		port, err := nat.NewPort("tcp", "80")
		Expect(err).ToNot(HaveOccurred())
		s.WithPortBinding(port, 8080)

		response, err := containers.CreateWithSpec(bt.conn, s, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(response.ID).To(HaveLen(64))

		requests := bt.daemon.RequestsFor("/containers/create")
		Expect(requests).To(HaveLen(1))
		Expect(requests[0].ContentType).To(Equal("application/json"))
		Expect(string(requests[0].Body)).To(Equal(`{"Image":"alpine:3.20","PortBindings":{"80/tcp":[{"HostPort":"8080"}]}}`))
	})

	It("create sends the network mode shape verbatim", func() {
		bt.daemon.AddImage(alpine)
		s := specgen.NewSpecGenerator(alpine)
		s.WithNetworkMode("container:deadbeef")

		_, err := containers.CreateWithSpec(bt.conn, s, nil)
		Expect(err).ToNot(HaveOccurred())

		requests := bt.daemon.RequestsFor("/containers/create")
		Expect(requests).To(HaveLen(1))
		Expect(string(requests[0].Body)).To(Equal(`{"Image":"alpine:3.20","NetworkMode":"container:deadbeef"}`))
	})

	It("create names the container when asked", func() {
		bt.daemon.AddImage(alpine)
		s := specgen.NewSpecGenerator(alpine)
		s.WithNetworkMode("bridge")

		_, err := containers.CreateWithSpec(bt.conn, s, new(containers.CreateOptions).WithName("web"))
		Expect(err).ToNot(HaveOccurred())

		requests := bt.daemon.RequestsFor("/containers/create")
		Expect(requests).To(HaveLen(1))
		Expect(requests[0].RawQuery).To(Equal("name=web"))
	})

	It("create refuses contradictory specs before calling the daemon", func() {
		s := specgen.NewSpecGenerator(alpine)
		port, err := nat.NewPort("tcp", "80")
		Expect(err).ToNot(HaveOccurred())
		s.WithPortBinding(port, 8080)
		s.WithNetworkMode("bridge")

		_, err = containers.CreateWithSpec(bt.conn, s, nil)
		Expect(err).To(MatchError(ContainSubstring("mutually exclusive")))
		Expect(bt.daemon.RequestsFor("/containers/create")).To(BeEmpty())
	})

	It("create of a missing image is an API error", func() {
		s := specgen.NewSpecGenerator("ghost:latest")
		s.WithNetworkMode("bridge")

		_, err := containers.CreateWithSpec(bt.conn, s, nil)
		Expect(err).To(HaveOccurred())
		code, checkErr := bindings.CheckResponseCode(err)
		Expect(checkErr).ToNot(HaveOccurred())
		Expect(code).To(BeNumerically("==", http.StatusNotFound))
	})

	It("start brings the container up with an address", func() {
		id := startedContainer("web")

		listed, err := containers.List(bt.conn, new(containers.ListOptions).WithFilters(map[string][]string{"id": {id}}))
		Expect(err).ToNot(HaveOccurred())
		Expect(listed).To(HaveLen(1))
		Expect(listed[0].State).To(Equal("running"))
		Expect(listed[0].NetworkSettings).ToNot(BeNil())
		Expect(listed[0].NetworkSettings.Networks["bridge"].IPAddress).To(HavePrefix("172.17.0."))
	})

	It("start of a running container surfaces the daemon's answer", func() {
		id := startedContainer("web")

		err := containers.Start(bt.conn, id, nil)
		Expect(err).To(HaveOccurred())
		code, checkErr := bindings.CheckResponseCode(err)
		Expect(checkErr).ToNot(HaveOccurred())
		Expect(code).To(BeNumerically("==", http.StatusNotModified))
	})

	It("lifecycle posts travel without a payload", func() {
		id := startedContainer("web")

		requests := bt.daemon.RequestsFor("/containers/" + id + "/start")
		Expect(requests).To(HaveLen(1))
		Expect(requests[0].Body).To(BeEmpty())
		Expect(requests[0].ContentType).To(BeEmpty())
	})

	It("stop forwards the timeout and refuses a second stop", func() {
		id := startedContainer("web")

		Expect(containers.Stop(bt.conn, id, new(containers.StopOptions).WithTimeout(2))).To(Succeed())
		requests := bt.daemon.RequestsFor("/containers/" + id + "/stop")
		Expect(requests).To(HaveLen(1))
		Expect(requests[0].RawQuery).To(Equal("t=2"))

		err := containers.Stop(bt.conn, id, nil)
		Expect(err).To(HaveOccurred())
		code, checkErr := bindings.CheckResponseCode(err)
		Expect(checkErr).ToNot(HaveOccurred())
		Expect(code).To(BeNumerically("==", http.StatusNotModified))
	})

	It("remove refuses a running container unless forced", func() {
		id := startedContainer("web")

		err := containers.Remove(bt.conn, id, nil)
		Expect(err).To(HaveOccurred())
		code, checkErr := bindings.CheckResponseCode(err)
		Expect(checkErr).ToNot(HaveOccurred())
		Expect(code).To(BeNumerically("==", http.StatusConflict))

		options := new(containers.RemoveOptions).WithForce(true).WithVolumes(true)
		Expect(containers.Remove(bt.conn, id, options)).To(Succeed())

		requests := bt.daemon.RequestsFor("/containers/" + id)
		Expect(requests).To(HaveLen(2))
		Expect(requests[1].RawQuery).To(Equal("force=true&v=true"))
	})

	It("remove of a missing container can be ignored", func() {
		err := containers.Remove(bt.conn, "nosuch", nil)
		Expect(err).To(HaveOccurred())
		code, checkErr := bindings.CheckResponseCode(err)
		Expect(checkErr).ToNot(HaveOccurred())
		Expect(code).To(BeNumerically("==", http.StatusNotFound))

		Expect(containers.Remove(bt.conn, "nosuch", new(containers.RemoveOptions).WithIgnore(true))).To(Succeed())

		// The ignore flag stays on the client side.
		requests := bt.daemon.RequestsFor("/containers/nosuch")
		Expect(requests).To(HaveLen(2))
		Expect(requests[1].RawQuery).To(BeEmpty())
	})

	It("list filters by id with a single URL encoding", func() {
		id := startedContainer("web")
		startedContainer("db")

		listed, err := containers.List(bt.conn, new(containers.ListOptions).WithFilters(map[string][]string{"id": {id}}))
		Expect(err).ToNot(HaveOccurred())
		Expect(listed).To(HaveLen(1))
		Expect(listed[0].ID).To(Equal(id))
		Expect(listed[0].Names).To(ContainElement("/web"))

		requests := bt.daemon.RequestsFor("/containers/json")
		Expect(requests).To(HaveLen(1))
		Expect(requests[0].RawQuery).To(Equal("filters=" + url.QueryEscape(`{"id":["`+id+`"]}`)))
	})

	It("list sees stopped containers only when told to", func() {
		id := startedContainer("web")
		Expect(containers.Stop(bt.conn, id, nil)).To(Succeed())

		listed, err := containers.List(bt.conn, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(listed).To(HaveLen(0))

		listed, err = containers.List(bt.conn, new(containers.ListOptions).WithAll(true))
		Expect(err).ToNot(HaveOccurred())
		Expect(listed).To(HaveLen(1))
		Expect(listed[0].State).To(Equal("exited"))
	})

	It("list caps the answer at the limit, newest first", func() {
		startedContainer("one")
		startedContainer("two")
		startedContainer("three")

		listed, err := containers.List(bt.conn, new(containers.ListOptions).WithLimit(2))
		Expect(err).ToNot(HaveOccurred())
		Expect(listed).To(HaveLen(2))
		Expect(listed[0].Names).To(ContainElement("/three"))
	})

	It("prune reports the removed containers", func() {
		id := startedContainer("web")
		Expect(containers.Stop(bt.conn, id, nil)).To(Succeed())

		report, err := containers.Prune(bt.conn, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(report.ContainersDeleted).To(ContainElement(id))
		Expect(report.SpaceReclaimed).To(BeNumerically(">", 0))
		Expect(bt.daemon.RequestsFor("/containers/prune")).To(HaveLen(1))
	})

	It("a daemon failure carries the path and the raw answer", func() {
		bt.daemon.RespondWith(http.MethodPost, "/containers/prune", http.StatusInternalServerError, "the daemon is on fire")

		_, err := containers.Prune(bt.conn, nil)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("/containers/prune"))
		Expect(err.Error()).To(ContainSubstring("500"))
		Expect(err.Error()).To(ContainSubstring("the daemon is on fire"))
	})

	It("a success body that is not JSON is a parse error", func() {
		bt.daemon.RespondWith(http.MethodGet, "/containers/json", http.StatusOK, "{not json")

		_, err := containers.List(bt.conn, nil)
		Expect(err).To(MatchError(ContainSubstring("unable to decode API response")))
		Expect(err.Error()).To(ContainSubstring("{not json"))
	})

	It("a body that is not valid UTF-8 is refused", func() {
		bt.daemon.RespondWith(http.MethodGet, "/containers/json", http.StatusOK, string([]byte{0xff, 0xfe, 0xfd}))

		_, err := containers.List(bt.conn, nil)
		Expect(err).To(MatchError(ContainSubstring("not valid UTF-8")))
	})
})
