// Command shipnetsim-routecheck loads a network description and reports
// whether a shortest path exists between two or more waypoints, without
// running a full simulation. Useful for validating a network file and a
// planned route before committing it to a simulation run.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/adapters/networkfile"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/network"
)

func main() {
	networkPath := flag.String("network", "", "path to the network description file")
	waypointsFlag := flag.String("waypoints", "", "semicolon-separated lon,lat pairs, e.g. \"-5.1,50.2;-4.9,50.3\"")
	useAStar := flag.Bool("astar", false, "use A* instead of Dijkstra")
	flag.Parse()

	if *networkPath == "" || *waypointsFlag == "" {
		log.Fatal("usage: shipnetsim-routecheck --network <path> --waypoints \"lon,lat;lon,lat;...\"")
	}

	waypoints, err := parseWaypoints(*waypointsFlag)
	if err != nil {
		log.Fatalf("invalid --waypoints: %v", err)
	}

	f, err := os.Open(*networkPath)
	if err != nil {
		log.Fatalf("failed to open network description: %v", err)
	}
	defer f.Close()

	region, err := networkfile.Parse(f)
	if err != nil {
		log.Fatalf("failed to parse network description: %v", err)
	}

	algo := network.AlgorithmDijkstra
	if *useAStar {
		algo = network.AlgorithmAStar
	}

	result, err := network.ShortestPath(region, waypoints, algo)
	if err != nil {
		log.Fatalf("no route found: %v", err)
	}

	fmt.Printf("route found: %d points, total length %.1f m\n", len(result.Points), result.TotalLengthM)
}

func parseWaypoints(s string) ([]geo.GPoint, error) {
	var points []geo.GPoint
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("expected lon,lat, got %q", pair)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, err
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, err
		}
		points = append(points, geo.NewGPoint(lon, lat))
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 waypoints")
	}
	return points, nil
}
