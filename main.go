package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/roomroute/indoornav/building"
	"github.com/roomroute/indoornav/parser"
	"github.com/roomroute/indoornav/routing"
	"golang.org/x/exp/slog"
)

var MAP *building.MapModel

func main() {
	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, nil)))

	config := ReadConfig("./config.yaml")

	if config.Map.Source != "" {
		MAP = building.LoadMapModel(config.Map.Source)
	} else if config.Map.OSM != "" {
		MAP = parser.ImportOSM(config.Map.OSM)
	} else {
		panic("no map source configured")
	}
	slog.Info("map loaded")

	if count := routing.ComponentCount(MAP); count > 1 {
		slog.Warn(fmt.Sprintf("map has %d disconnected components, some routes will fail", count))
	}

	app := http.DefaultServeMux
	MapPost(app, "/v1/route", HandleRouteRequest)
	MapPost(app, "/v1/route/nearest", HandleNearestRequest)
	MapPost(app, "/v1/route/alternatives", HandleAlternativesRequest)
	MapPost(app, "/v1/route/validate", HandleValidateRequest)
	MapGet(app, "/v1/map/nodes", HandleNodesRequest)

	addr := config.Server.Addr
	if addr == "" {
		addr = ":5002"
	}
	slog.Info("listening on " + addr)
	http.ListenAndServe(addr, nil)
}
