// Package utils provides an in-process stand-in for the engine API so the
// bindings can be exercised over a real unix socket without a daemon on the
// host.  The fake keeps images and containers in memory, journals every
// request it sees, and lets a test force arbitrary responses.
package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/docksock/docksock/pkg/domain/entities"
	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
)

// defaultAPIVersion is what the fake reports in the API-Version header
// unless a test overrides it.
const defaultAPIVersion = "1.41"

// containerSize is the disk space the fake pretends every container holds,
// so prune reports reclaim something plausible.
const containerSize = 1 << 20

// RecordedRequest is one entry of the daemon's request journal.
type RecordedRequest struct {
	Method      string
	Path        string
	RawQuery    string
	ContentType string
	Body        []byte
}

// CannedResponse overrides the normal handler for one route.
type CannedResponse struct {
	Code int
	Body string
}

// Container is the daemon-side record of a created container.
type Container struct {
	ID           string
	Name         string
	Image        string
	State        string
	Created      int64
	NetworkMode  string
	PortBindings map[string][]portBinding
	Networks     map[string]*entities.EndpointSettings
}

// portBinding mirrors the wire shape of one host port entry.
type portBinding struct {
	HostPort string `json:"HostPort"`
}

// createBody mirrors the wire shape of a container create request.
type createBody struct {
	Image        string                   `json:"Image"`
	PortBindings map[string][]portBinding `json:"PortBindings"`
	NetworkMode  string                   `json:"NetworkMode"`
}

// Daemon is the fake engine.  Start one with NewDaemon, point a connection
// at URI(), and Stop it when the test is done.
type Daemon struct {
	server  *http.Server
	decoder *schema.Decoder
	logPipe *io.PipeWriter
	socket  string

	mu         sync.Mutex
	apiVersion string
	requests   []RecordedRequest
	overrides  map[string]CannedResponse
	images     map[string]*entities.ImageSummary
	containers []*Container
	nextIP     int
}

// NewDaemon starts a fake daemon on a fresh unix socket under dir and
// serves until Stop is called.
func NewDaemon(dir string) (*Daemon, error) {
	socket := filepath.Join(dir, "docker.sock")
	listener, err := net.Listen("unix", socket)
	if err != nil {
		return nil, err
	}

	d := &Daemon{
		decoder:    newDecoder(),
		socket:     socket,
		apiVersion: defaultAPIVersion,
		overrides:  make(map[string]CannedResponse),
		images:     make(map[string]*entities.ImageSummary),
		nextIP:     2,
	}

	router := mux.NewRouter()
	router.HandleFunc("/_ping", d.handler(d.ping)).Methods(http.MethodGet)
	router.HandleFunc("/version", d.handler(d.version)).Methods(http.MethodGet)
	router.HandleFunc("/images/json", d.handler(d.listImages)).Methods(http.MethodGet)
	router.HandleFunc("/images/create", d.handler(d.pullImage)).Methods(http.MethodPost)
	router.HandleFunc("/containers/json", d.handler(d.listContainers)).Methods(http.MethodGet)
	router.HandleFunc("/containers/create", d.handler(d.createContainer)).Methods(http.MethodPost)
	router.HandleFunc("/containers/prune", d.handler(d.pruneContainers)).Methods(http.MethodPost)
	router.HandleFunc("/containers/{name}/start", d.handler(d.startContainer)).Methods(http.MethodPost)
	router.HandleFunc("/containers/{name}/stop", d.handler(d.stopContainer)).Methods(http.MethodPost)
	router.HandleFunc("/containers/{name}", d.handler(d.removeContainer)).Methods(http.MethodDelete)
	router.NotFoundHandler = d.handler(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "page not found")
	})

	d.logPipe = logrus.StandardLogger().WriterLevel(logrus.DebugLevel)
	d.server = &http.Server{Handler: handlers.CombinedLoggingHandler(d.logPipe, router)}
	go func() {
		if err := d.server.Serve(listener); err != http.ErrServerClosed {
			logrus.Errorf("Fake daemon exited: %v", err)
		}
	}()
	return d, nil
}

// URI returns the value NewConnection wants, e.g. "unix:///tmp/x/docker.sock".
func (d *Daemon) URI() string {
	return "unix://" + d.socket
}

// Stop shuts the daemon down and releases the socket.
func (d *Daemon) Stop() error {
	err := d.server.Close()
	d.logPipe.Close()
	return err
}

// SetAPIVersion changes the API-Version header of upcoming responses.  An
// empty value drops the header entirely.
func (d *Daemon) SetAPIVersion(v string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.apiVersion = v
}

// RespondWith forces upcoming requests for method and path to be answered
// with the canned status and body instead of the normal handler.
func (d *Daemon) RespondWith(method, path string, code int, body string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.overrides[method+" "+path] = CannedResponse{Code: code, Body: body}
}

// Requests returns a copy of every request seen so far.
func (d *Daemon) Requests() []RecordedRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]RecordedRequest{}, d.requests...)
}

// RequestsFor returns the recorded requests whose path equals path.
func (d *Daemon) RequestsFor(path string) []RecordedRequest {
	var matches []RecordedRequest
	for _, r := range d.Requests() {
		if r.Path == path {
			matches = append(matches, r)
		}
	}
	return matches
}

// AddImage seeds an image the daemon will report for reference and returns
// its summary.
func (d *Daemon) AddImage(reference string) *entities.ImageSummary {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.addImage(reference)
}

func (d *Daemon) addImage(reference string) *entities.ImageSummary {
	if summary, ok := d.images[reference]; ok {
		return summary
	}
	summary := &entities.ImageSummary{
		ID:       "sha256:" + mintID(),
		RepoTags: []string{reference},
		Created:  time.Now().Unix(),
		Size:     containerSize,
	}
	d.images[reference] = summary
	return summary
}

// handler wraps a route with the envelope every response shares: panic
// recovery, the request journal, version headers, and canned overrides.
func (d *Daemon) handler(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// http.Server hides panics, we want to see them and fix the cause.
		defer func() {
			if err := recover(); err != nil {
				buf := make([]byte, 1<<20)
				n := runtime.Stack(buf, false)
				logrus.Warnf("Recovering from fake daemon handler panic: %v, %s", err, buf[:n])
				writeError(w, http.StatusInternalServerError, fmt.Sprintf("%v", err))
			}
		}()

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		if err := r.ParseForm(); err != nil {
			logrus.Infof("Failed Request: unable to parse form: %q", err)
		}

		d.mu.Lock()
		d.requests = append(d.requests, RecordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			RawQuery:    r.URL.RawQuery,
			ContentType: r.Header.Get("Content-Type"),
			Body:        body,
		})
		apiVersion := d.apiVersion
		canned, hasCanned := d.overrides[r.Method+" "+r.URL.Path]
		d.mu.Unlock()

		if apiVersion != "" {
			w.Header().Set("API-Version", apiVersion)
			w.Header().Set("Server", "FakeEngine/"+apiVersion)
		}
		if hasCanned {
			w.WriteHeader(canned.Code)
			fmt.Fprint(w, canned.Body)
			return
		}
		h(w, r)
	}
}

func (d *Daemon) ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

func (d *Daemon) version(w http.ResponseWriter, r *http.Request) {
	d.mu.Lock()
	apiVersion := d.apiVersion
	d.mu.Unlock()
	writeJSON(w, http.StatusOK, entities.VersionReport{
		Version:       "24.0.7",
		APIVersion:    apiVersion,
		MinAPIVersion: "1.12",
		GoVersion:     runtime.Version(),
		Os:            runtime.GOOS,
		Arch:          runtime.GOARCH,
	})
}

func (d *Daemon) listImages(w http.ResponseWriter, r *http.Request) {
	query := struct {
		All     bool                `schema:"all"`
		Filters map[string][]string `schema:"filters"`
	}{}
	if err := d.decoder.Decode(&query, r.URL.Query()); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	summaries := []*entities.ImageSummary{}
	for _, summary := range d.images {
		if matchesReference(summary, query.Filters["reference"]) {
			summaries = append(summaries, summary)
		}
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (d *Daemon) pullImage(w http.ResponseWriter, r *http.Request) {
	fromImage := r.URL.Query().Get("fromImage")
	if fromImage == "" {
		writeError(w, http.StatusInternalServerError, "invalid reference format")
		return
	}

	d.mu.Lock()
	d.addImage(fromImage)
	d.mu.Unlock()

	// A pull answers with a progress stream, one JSON document per line.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "{\"status\":\"Pulling from %s\"}\n{\"status\":\"Download complete\"}\n", fromImage)
}

func (d *Daemon) listContainers(w http.ResponseWriter, r *http.Request) {
	query := struct {
		All     bool                `schema:"all"`
		Filters map[string][]string `schema:"filters"`
		Limit   int                 `schema:"limit"`
	}{}
	if err := d.decoder.Decode(&query, r.URL.Query()); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	listed := []entities.ListContainer{}
	// Newest first, the way the real daemon answers.
	for i := len(d.containers) - 1; i >= 0; i-- {
		con := d.containers[i]
		if !query.All && con.State != "running" {
			continue
		}
		if !matchesID(con, query.Filters["id"]) {
			continue
		}
		listed = append(listed, listEntry(con, d.images))
		if query.Limit > 0 && len(listed) >= query.Limit {
			break
		}
	}
	writeJSON(w, http.StatusOK, listed)
}

func (d *Daemon) createContainer(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	create := createBody{}
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.images[create.Image]; !ok {
		writeError(w, http.StatusNotFound, "No such image: "+create.Image)
		return
	}
	if name == "" {
		name = "fake_" + mintID()[:8]
	}
	for _, con := range d.containers {
		if con.Name == name {
			writeError(w, http.StatusConflict, fmt.Sprintf("Conflict. The container name %q is already in use", name))
			return
		}
	}

	con := &Container{
		ID:           mintID(),
		Name:         name,
		Image:        create.Image,
		State:        "created",
		Created:      time.Now().Unix(),
		NetworkMode:  create.NetworkMode,
		PortBindings: create.PortBindings,
	}
	d.containers = append(d.containers, con)
	writeJSON(w, http.StatusCreated, entities.ContainerCreateResponse{ID: con.ID, Warnings: []string{}})
}

func (d *Daemon) startContainer(w http.ResponseWriter, r *http.Request) {
	d.mu.Lock()
	defer d.mu.Unlock()
	con := d.findContainer(mux.Vars(r)["name"])
	if con == nil {
		writeError(w, http.StatusNotFound, "No such container: "+mux.Vars(r)["name"])
		return
	}
	if con.State == "running" {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	con.State = "running"
	// A container sharing another one's network namespace brings no
	// network endpoints of its own.
	if !strings.HasPrefix(con.NetworkMode, "container:") {
		con.Networks = map[string]*entities.EndpointSettings{
			"bridge": {
				NetworkID:   mintID(),
				EndpointID:  mintID(),
				Gateway:     "172.17.0.1",
				IPAddress:   fmt.Sprintf("172.17.0.%d", d.nextIP),
				IPPrefixLen: 16,
				MacAddress:  fmt.Sprintf("02:42:ac:11:00:%02x", d.nextIP),
			},
		}
		d.nextIP++
	}
	w.WriteHeader(http.StatusNoContent)
}

func (d *Daemon) stopContainer(w http.ResponseWriter, r *http.Request) {
	d.mu.Lock()
	defer d.mu.Unlock()
	con := d.findContainer(mux.Vars(r)["name"])
	if con == nil {
		writeError(w, http.StatusNotFound, "No such container: "+mux.Vars(r)["name"])
		return
	}
	if con.State != "running" {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	con.State = "exited"
	w.WriteHeader(http.StatusNoContent)
}

func (d *Daemon) removeContainer(w http.ResponseWriter, r *http.Request) {
	query := struct {
		Force bool `schema:"force"`
		V     bool `schema:"v"`
	}{}
	if err := d.decoder.Decode(&query, r.URL.Query()); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	con := d.findContainer(mux.Vars(r)["name"])
	if con == nil {
		writeError(w, http.StatusNotFound, "No such container: "+mux.Vars(r)["name"])
		return
	}
	if con.State == "running" && !query.Force {
		writeError(w, http.StatusConflict, fmt.Sprintf("You cannot remove a running container %s. Stop the container before attempting removal or force remove", con.ID))
		return
	}
	d.dropContainer(con.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (d *Daemon) pruneContainers(w http.ResponseWriter, r *http.Request) {
	query := struct {
		Filters map[string][]string `schema:"filters"`
	}{}
	if err := d.decoder.Decode(&query, r.URL.Query()); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	report := entities.ContainerPruneReport{ContainersDeleted: []string{}}
	for _, con := range append([]*Container{}, d.containers...) {
		if con.State == "running" {
			continue
		}
		d.dropContainer(con.ID)
		report.ContainersDeleted = append(report.ContainersDeleted, con.ID)
		report.SpaceReclaimed += containerSize
	}
	writeJSON(w, http.StatusOK, report)
}

// findContainer resolves a full ID, an ID prefix, or a name, with or
// without the leading slash.  Callers hold d.mu.
func (d *Daemon) findContainer(nameOrID string) *Container {
	name := strings.TrimPrefix(nameOrID, "/")
	for _, con := range d.containers {
		if con.ID == nameOrID || strings.HasPrefix(con.ID, nameOrID) || con.Name == name {
			return con
		}
	}
	return nil
}

// dropContainer removes the container from the store.  Callers hold d.mu.
func (d *Daemon) dropContainer(id string) {
	kept := d.containers[:0]
	for _, con := range d.containers {
		if con.ID != id {
			kept = append(kept, con)
		}
	}
	d.containers = kept
}

func listEntry(con *Container, images map[string]*entities.ImageSummary) entities.ListContainer {
	entry := entities.ListContainer{
		ID:      con.ID,
		Names:   []string{"/" + con.Name},
		Image:   con.Image,
		Command: "docker-entrypoint.sh",
		Created: con.Created,
		State:   con.State,
	}
	if image, ok := images[con.Image]; ok {
		entry.ImageID = image.ID
	}
	switch con.State {
	case "running":
		entry.Status = "Up 1 second"
	case "exited":
		entry.Status = "Exited (0) 1 second ago"
	default:
		entry.Status = "Created"
	}
	if len(con.Networks) > 0 {
		entry.NetworkSettings = &entities.NetworkSettingsSummary{Networks: con.Networks}
	}
	return entry
}

func matchesReference(summary *entities.ImageSummary, references []string) bool {
	if len(references) == 0 {
		return true
	}
	for _, wanted := range references {
		for _, tag := range summary.RepoTags {
			if tag == wanted {
				return true
			}
		}
	}
	return false
}

func matchesID(con *Container, ids []string) bool {
	if len(ids) == 0 {
		return true
	}
	for _, id := range ids {
		if strings.HasPrefix(con.ID, id) {
			return true
		}
	}
	return false
}

// newDecoder builds the query decoder with a converter for the JSON filter
// map parameter, which gorilla/schema cannot handle on its own.
func newDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	decoder.RegisterConverter(map[string][]string{}, func(query string) reflect.Value {
		filters := map[string][]string{}
		if err := json.Unmarshal([]byte(query), &filters); err != nil {
			logrus.Warnf("Unable to parse filters %q: %v", query, err)
			return reflect.ValueOf(map[string][]string{})
		}
		return reflect.ValueOf(filters)
	})
	return decoder
}

func writeJSON(w http.ResponseWriter, code int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	coder := json.NewEncoder(w)
	coder.SetEscapeHTML(true)
	if err := coder.Encode(value); err != nil {
		logrus.Errorf("unable to write json: %q", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"message": msg})
}

// mintID returns a fresh 64 character hex ID the way the real daemon
// labels containers.
func mintID() string {
	return strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")
}
