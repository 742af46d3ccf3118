// Package monitoring serves the state of a running simulator over HTTP. It
// only reads from the simulator.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"reflect"
	"runtime/pprof"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/rs/xid"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/vmsim/mem/vm"
	"github.com/sarchlab/vmsim/mem/vm/mmu"
	"github.com/sarchlab/vmsim/memory"
	"github.com/sarchlab/vmsim/monitoring/web"
	"github.com/sarchlab/vmsim/sim/hooking"
)

// A Snapshotter can copy its state.
type Snapshotter interface {
	Name() string
	Snapshot() mmu.Snapshot
}

// Monitor turns a simulator into a server that can be inspected from a
// browser.
type Monitor struct {
	sessionID  string
	portNumber int
	url        string

	target   Snapshotter
	devices  []*memory.Device
	counters *hooking.CountTracer

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{
		sessionID: xid.New().String(),
	}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber != 0 && portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterMMU registers the MMU to inspect, together with its devices.
func (m *Monitor) RegisterMMU(c *mmu.Comp) {
	m.target = c
	m.devices = []*memory.Device{c.RAM(), c.Swap()}
}

// RegisterSnapshotter registers a state source other than an MMU.
func (m *Monitor) RegisterSnapshotter(s Snapshotter) {
	m.target = s
}

// RegisterDevice registers a device whose content can be dumped.
func (m *Monitor) RegisterDevice(d *memory.Device) {
	m.devices = append(m.devices, d)
}

// RegisterCounter registers the event counters to report.
func (m *Monitor) RegisterCounter(t *hooking.CountTracer) {
	m.counters = t
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := &ProgressBar{
		ID:        xid.New().String(),
		Name:      name,
		StartTime: time.Now(),
		Total:     total,
	}

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar to be shown on the webpage.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// URL returns the address of the server once it is started.
func (m *Monitor) URL() string {
	return m.url
}

func (m *Monitor) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/session", m.session)
	r.HandleFunc("/api/processes", m.listProcesses)
	r.HandleFunc("/api/process/{pid}", m.processDetails)
	r.HandleFunc("/api/tlb", m.listTLB)
	r.HandleFunc("/api/device/{name}", m.dumpDevice)
	r.HandleFunc("/api/counters", m.listCounters)
	r.HandleFunc("/api/snapshot/{section}", m.snapshotSection)
	r.HandleFunc("/api/field/{path}", m.fieldValue)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.PathPrefix("/").Handler(http.FileServer(web.GetAssets()))

	return r
}

// StartServer starts the monitor as a web server with a custom port if wanted.
func (m *Monitor) StartServer() {
	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.url = fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", m.url)

	handler := m.router()

	go func() {
		err := http.Serve(listener, handler)
		dieOnErr(err)
	}()
}

func (m *Monitor) session(w http.ResponseWriter, _ *http.Request) {
	name := ""
	if m.target != nil {
		name = m.target.Name()
	}

	writeJSON(w, map[string]string{
		"session": m.sessionID,
		"name":    name,
	})
}

type processSummary struct {
	PID         vm.PID `json:"pid"`
	NumSymbols  int    `json:"num_symbols"`
	NumMapped   int    `json:"num_mapped"`
	NumResident int    `json:"num_resident"`
}

func (m *Monitor) snapshotOr503(w http.ResponseWriter) (mmu.Snapshot, bool) {
	if m.target == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, err := w.Write([]byte("Nothing to monitor"))
		dieOnErr(err)

		return mmu.Snapshot{}, false
	}

	return m.target.Snapshot(), true
}

func (m *Monitor) listProcesses(w http.ResponseWriter, _ *http.Request) {
	s, ok := m.snapshotOr503(w)
	if !ok {
		return
	}

	summaries := make([]processSummary, 0, len(s.Processes))
	for _, p := range s.Processes {
		summaries = append(summaries, processSummary{
			PID:         p.PID,
			NumSymbols:  len(p.Symbols),
			NumMapped:   len(p.PTEs),
			NumResident: len(p.FIFO),
		})
	}

	writeJSON(w, summaries)
}

func (m *Monitor) processDetails(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.ParseUint(mux.Vars(r)["pid"], 10, 32)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	s, ok := m.snapshotOr503(w)
	if !ok {
		return
	}

	p, found := s.Process(vm.PID(pid))
	if !found {
		w.WriteHeader(http.StatusNotFound)
		_, err = w.Write([]byte("Process not found"))
		dieOnErr(err)

		return
	}

	writeJSON(w, p)
}

func (m *Monitor) listTLB(w http.ResponseWriter, _ *http.Request) {
	s, ok := m.snapshotOr503(w)
	if !ok {
		return
	}

	writeJSON(w, map[string]any{
		"capacity": s.TLBCapacity,
		"entries":  s.TLB,
	})
}

func (m *Monitor) dumpDevice(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	for _, d := range m.devices {
		if d.Name() == name {
			dieOnErr(d.Dump(w))
			return
		}
	}

	w.WriteHeader(http.StatusNotFound)
	_, err := w.Write([]byte("Device not found"))
	dieOnErr(err)
}

func (m *Monitor) listCounters(w http.ResponseWriter, _ *http.Request) {
	counts := map[string]uint64{}
	if m.counters != nil {
		counts = m.counters.Counts()
	}

	writeJSON(w, counts)
}

func (m *Monitor) snapshotSection(w http.ResponseWriter, r *http.Request) {
	section := mux.Vars(r)["section"]

	s, ok := m.snapshotOr503(w)
	if !ok {
		return
	}

	if !reflect.ValueOf(s).FieldByName(section).IsValid() {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, "Section %s not found", section)

		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(&s)
	serializer.SetMaxDepth(4)

	err := serializer.SetEntryPoint([]string{section})
	dieOnErr(err)

	err = serializer.Serialize(w)
	dieOnErr(err)
}

type fieldFormatError struct {
	field string
}

func (e fieldFormatError) Error() string {
	return fmt.Sprintf("cannot follow field %q", e.field)
}

// walkFields follows a dot-separated path of field names and slice indices.
func walkFields(root any, fields string) (reflect.Value, error) {
	elem := reflect.ValueOf(root)

	for _, name := range strings.Split(fields, ".") {
		for elem.Kind() == reflect.Ptr || elem.Kind() == reflect.Interface {
			elem = elem.Elem()
		}

		switch elem.Kind() {
		case reflect.Struct:
			elem = elem.FieldByName(name)
			if !elem.IsValid() {
				return elem, fieldFormatError{field: name}
			}
		case reflect.Slice:
			index, err := strconv.Atoi(name)
			if err != nil || index < 0 || index >= elem.Len() {
				return elem, fieldFormatError{field: name}
			}

			elem = elem.Index(index)
		default:
			return elem, fieldFormatError{field: name}
		}
	}

	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}

	return elem, nil
}

func (m *Monitor) fieldValue(w http.ResponseWriter, r *http.Request) {
	s, ok := m.snapshotOr503(w)
	if !ok {
		return
	}

	elem, err := walkFields(s, mux.Vars(r)["path"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	writeJSON(w, elem.Interface())
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	bars := make([]progressBarStatus, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		bars = append(bars, b.status())
	}

	writeJSON(w, bars)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	writeJSON(w, prof)
}

func writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
