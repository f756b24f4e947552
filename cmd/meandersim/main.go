// Command meandersim runs the meander evolution engine over a flat terrain
// and an initial channel (straight, or read from a GeoJSON file), exports a
// PNG, and optionally streams live updates over WebSocket.
//
// Grounded on the teacher's main.go: flag-based configuration, a printed
// run summary, then a construct-then-loop shape.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"meanderflow/internal/config"
	"meanderflow/internal/export"
	"meanderflow/internal/field"
	"meanderflow/internal/ingest"
	"meanderflow/internal/liveserver"
	"meanderflow/internal/simulation"
	"meanderflow/internal/stopwatch"
	"meanderflow/internal/vecmath"
)

func main() {
	var (
		seed       = flag.Int64("seed", 1, "RNG seed")
		steps      = flag.Int("steps", 100, "number of simulation steps to run")
		domainSize = flag.Float64("domain", 5000, "square terrain domain size, meters")
		resolution = flag.Int("resolution", 128, "terrain grid resolution (per axis)")
		width      = flag.Float64("width", 50, "channel width, meters")
		configPath = flag.String("config", "", "optional JSON parameter override file")
		channelIn  = flag.String("channel", "", "optional GeoJSON file supplying the initial channel")
		imageOut   = flag.String("image", "meander.png", "output PNG path")
		imageSize  = flag.Int("imagesize", 1024, "output image width/height in pixels")
		servePort  = flag.Int("serve", 0, "if nonzero, run a live WebSocket server on this port")
		logPath    = flag.String("log", "meandersim.log", "log file path")
	)
	flag.Parse()

	logger := newLogger(*logPath)
	defer logger.Sync()
	sugar := logger.Sugar()

	fmt.Println("=== Meander Evolution Simulator ===")
	fmt.Printf("Seed: %d\n", *seed)
	fmt.Printf("Steps: %d\n", *steps)
	fmt.Printf("Domain: %.0f x %.0f m, resolution %dx%d\n", *domainSize, *domainSize, *resolution, *resolution)

	params, err := config.Load(*configPath)
	if err != nil {
		sugar.Fatalw("loading config", "error", err)
	}

	terrain := flatTerrain(*domainSize, *resolution)

	cfg := simulation.Config{Parameters: params}
	sim := simulation.New(*seed, terrain, cfg, logger)

	points, width2, err := initialChannel(*channelIn, sim.GetBox(), *width)
	if err != nil {
		sugar.Fatalw("building initial channel", "error", err)
	}
	if err := sim.AddChannel(points, width2); err != nil {
		sugar.Fatalw("adding initial channel", "error", err)
	}

	var server *liveserver.Server
	if *servePort != 0 {
		server = liveserver.NewServer()
		http.Handle("/ws", server.Handler())
		go func() {
			addr := fmt.Sprintf(":%d", *servePort)
			fmt.Printf("Live server on %s\n", addr)
			sugar.Fatalw("live server exited", "error", http.ListenAndServe(addr, nil))
		}()
	}

	watch := stopwatch.New()
	for i := 0; i < *steps; i++ {
		sim.Step()
		if server != nil {
			server.Broadcast(liveserver.NewFrame(sim.StepCount(), sim.GetBox(), channelPoints(sim)))
		}
	}
	fmt.Printf("Ran %d steps in %s\n", *steps, watch.Elapsed())

	if err := export.OutputImage(sourceAdapter{sim}, *imageOut, int32(*imageSize), int32(*imageSize)); err != nil {
		sugar.Warnw("image export failed", "error", err)
	} else {
		fmt.Printf("Wrote %s\n", *imageOut)
	}
}

// newLogger builds a zap logger that writes JSON-encoded entries to a
// lumberjack-rotated file, mirroring the teacher's preference for a single
// run log over stdout noise.
func newLogger(path string) *zap.Logger {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(rotator),
		zap.InfoLevel,
	)
	return zap.New(core)
}

func flatTerrain(domainSize float64, resolution int) *field.ScalarField2D {
	box := field.NewBox2D(vecmath.NewVector2(0, 0), vecmath.NewVector2(domainSize, domainSize))
	terrain := field.NewScalarField2D(box, resolution, resolution)
	terrain.Fill(func(p vecmath.Vector2) float64 { return 0 })
	return terrain
}

func initialChannel(path string, box field.Box2D, width float64) ([]vecmath.Vector2, float64, error) {
	if path == "" {
		return straightChannel(box), width, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	points, err := ingest.LoadChannelGeoJSON(data)
	return points, width, err
}

// straightChannel builds a flat default channel across the domain, used
// when no GeoJSON file is supplied.
func straightChannel(box field.Box2D) []vecmath.Vector2 {
	const n = 100
	y := box.Center().Y
	points := make([]vecmath.Vector2, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		points[i] = vecmath.NewVector2(box.Min.X+t*box.Width(), y)
	}
	return points
}

func channelPoints(sim *simulation.Simulation) [][]vecmath.Vector2 {
	channels := sim.GetChannels()
	out := make([][]vecmath.Vector2, len(channels))
	for i, ch := range channels {
		out[i] = ch.Points()
	}
	return out
}

// sourceAdapter satisfies export.ChannelSource without export depending on
// the simulation package directly.
type sourceAdapter struct {
	sim *simulation.Simulation
}

func (a sourceAdapter) Channels() [][]vecmath.Vector2 {
	return channelPoints(a.sim)
}

func (a sourceAdapter) Box() field.Box2D {
	return a.sim.GetBox()
}
