package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"planetsim/config"
	"planetsim/mesh"
	"planetsim/tectonics"
)

// MeshData is one snapshot sent to viewers: the displaced mesh plus the
// per-vertex and per-boundary simulation state a renderer needs.
type MeshData struct {
	Type       string         `json:"type"`
	RunID      string         `json:"runId"`
	Vertices   [][3]float64   `json:"vertices"`
	Indices    []int32        `json:"indices"`
	Elevations []float64      `json:"elevations"`
	Thickness  []float64      `json:"thickness"`
	Age        []float64      `json:"age"`
	PlateIDs   []int          `json:"plateIds"`
	Boundaries []BoundaryData `json:"boundaries"`
	Time       float64        `json:"time"`
	TimeSpeed  float64        `json:"timeSpeed"`
}

type BoundaryData struct {
	Type     string  `json:"type"`
	Stress   float64 `json:"stress"`
	Vertices []int   `json:"vertices"`
	Color    string  `json:"color"`
}

// viewerServer runs the simulation loop and streams snapshots to websocket
// clients. The lithosphere is only ever touched from the loop goroutine;
// handlers read the cached snapshot it publishes and influence the
// simulation through the timeSpeed field alone.
type viewerServer struct {
	settings config.Settings
	lith     *tectonics.Lithosphere
	planet   *mesh.Mesh
	shader   *elevationShader
	stepper  *tectonics.AdaptiveTimeStep
	metrics  *serverMetrics
	runID    string

	mu        sync.Mutex
	timeSpeed float64

	snapMu sync.RWMutex
	latest MeshData

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]*sync.Mutex

	upgrader websocket.Upgrader
}

func newViewerServer(settings config.Settings, lith *tectonics.Lithosphere, planet *mesh.Mesh) *viewerServer {
	return &viewerServer{
		settings:  settings,
		lith:      lith,
		planet:    planet,
		shader:    newElevationShader(planet),
		stepper:   tectonics.NewAdaptiveTimeStep(),
		metrics:   newServerMetrics(),
		runID:     uuid.NewString(),
		timeSpeed: settings.Simulation.TimeSpeed,
		clients:   make(map[*websocket.Conn]*sync.Mutex),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *viewerServer) run() error {
	// Seed the snapshot cache before the loop goroutine exists, so new
	// clients always have a state to receive.
	s.storeSnapshot(s.snapshot())
	go s.simulationLoop()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	addr := fmt.Sprintf(":%d", s.settings.Server.Port)
	slog.Info("server starting", "addr", addr, "runId", s.runID)
	return http.ListenAndServe(addr, mux)
}

func (s *viewerServer) currentSpeed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeSpeed
}

func (s *viewerServer) setSpeed(speed float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slog.Info("time speed changed", "from", s.timeSpeed, "to", speed)
	s.timeSpeed = speed
}

func (s *viewerServer) simulationLoop() {
	interval := time.Duration(s.settings.Server.UpdateIntervalMs) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.metrics.plateCount.Set(float64(len(s.lith.Plates())))

	for range ticker.C {
		speed := s.currentSpeed()
		if speed <= 0 {
			continue
		}

		requested := speed * interval.Seconds()
		dt := s.stepper.NextStep(s.lith, requested)

		start := time.Now()
		changed := s.lith.Update(dt, s.planet.Positions, s.planet.Indices)
		elapsed := time.Since(start)

		s.metrics.stepDuration.Observe(elapsed.Seconds())
		s.metrics.stepsTotal.Inc()
		s.metrics.boundaryCount.Set(float64(len(s.lith.Boundaries())))

		if elapsed > interval {
			slog.Warn("slow simulation step", "elapsed", elapsed, "dt", dt)
		}
		if changed {
			snap := s.snapshot()
			s.storeSnapshot(snap)
			s.broadcast(snap)
		}
	}
}

func (s *viewerServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	connMu := &sync.Mutex{}
	s.clientsMu.Lock()
	s.clients[conn] = connMu
	s.metrics.clientCount.Set(float64(len(s.clients)))
	s.clientsMu.Unlock()
	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.metrics.clientCount.Set(float64(len(s.clients)))
		s.clientsMu.Unlock()
	}()

	snapshot := s.latestSnapshot()
	connMu.Lock()
	err = conn.WriteJSON(snapshot)
	connMu.Unlock()
	if err != nil {
		slog.Error("websocket write failed", "err", err)
		return
	}

	for {
		var msg map[string]interface{}
		if err := conn.ReadJSON(&msg); err != nil {
			slog.Debug("websocket closed", "err", err)
			return
		}
		if speed, ok := msg["timeSpeed"].(float64); ok {
			s.setSpeed(speed)
		}
	}
}

func (s *viewerServer) broadcast(data MeshData) {
	s.clientsMu.RLock()
	var failed []*websocket.Conn
	for conn, connMu := range s.clients {
		connMu.Lock()
		err := conn.WriteJSON(data)
		connMu.Unlock()
		if err != nil {
			slog.Warn("dropping viewer", "err", err)
			conn.Close()
			failed = append(failed, conn)
		}
	}
	s.clientsMu.RUnlock()

	if len(failed) > 0 {
		s.clientsMu.Lock()
		for _, conn := range failed {
			delete(s.clients, conn)
		}
		s.metrics.clientCount.Set(float64(len(s.clients)))
		s.clientsMu.Unlock()
	}
}

// storeSnapshot publishes a snapshot for handlers to read. Snapshots are
// immutable once stored; readers and the loop share the slices safely.
func (s *viewerServer) storeSnapshot(data MeshData) {
	s.snapMu.Lock()
	s.latest = data
	s.snapMu.Unlock()
}

// latestSnapshot returns the most recent published snapshot. Handlers use
// this instead of snapshot(): the lithosphere is not safe to read while the
// loop goroutine is updating it.
func (s *viewerServer) latestSnapshot() MeshData {
	s.snapMu.RLock()
	defer s.snapMu.RUnlock()
	return s.latest
}

// snapshot flattens the current plate state into a wire payload. It reads
// the lithosphere, so it must only run on the loop goroutine, or before
// that goroutine starts. Vertex positions are displaced along their normals
// by the derived elevation so the viewer sees terrain without knowing the
// shading formula.
func (s *viewerServer) snapshot() MeshData {
	numVertices := s.planet.VertexCount()
	elevations := s.shader.Elevations(s.lith, numVertices)

	vertices := make([][3]float64, numVertices)
	thickness := make([]float64, numVertices)
	age := make([]float64, numVertices)
	plateIDs := make([]int, numVertices)

	for _, p := range s.lith.Plates() {
		for _, v := range p.Vertices {
			plateIDs[v] = p.ID
			thickness[v] = p.Thickness[v]
			age[v] = p.Age[v]
		}
	}

	for i, pos := range s.planet.Positions {
		radius := 1.0 + elevations[i]*3.0
		vertices[i] = [3]float64{pos.X * radius, pos.Y * radius, pos.Z * radius}
	}

	boundaries := make([]BoundaryData, 0, len(s.lith.Boundaries()))
	for _, b := range s.lith.Boundaries() {
		var color string
		switch b.Type {
		case tectonics.Convergent:
			color = "#ff0000"
		case tectonics.Divergent:
			color = "#0000ff"
		default:
			color = "#ffff00"
		}
		boundaries = append(boundaries, BoundaryData{
			Type:     b.Type.String(),
			Stress:   b.Stress,
			Vertices: b.Vertices,
			Color:    color,
		})
	}

	return MeshData{
		Type:       "mesh_update",
		RunID:      s.runID,
		Vertices:   vertices,
		Indices:    s.planet.Indices,
		Elevations: elevations,
		Thickness:  thickness,
		Age:        age,
		PlateIDs:   plateIDs,
		Boundaries: boundaries,
		Time:       s.lith.Time(),
		TimeSpeed:  s.currentSpeed(),
	}
}
