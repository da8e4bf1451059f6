package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Luzifer/go_helpers/v2/position"
	"github.com/Luzifer/gpx2wpt/gpx"
)

// timedPoint pairs a track point with its parsed timestamp for the
// duration of the chunking pass
type timedPoint struct {
	gpx.TrackPoint
	ts time.Time
}

// collectTimedPoints extracts every track point carrying a parsable time
// element. Points without a time element are silently dropped; time text
// which does not parse aborts the whole conversion.
func collectTimedPoints(g *gpx.GPX) ([]timedPoint, error) {
	var out []timedPoint

	for _, p := range g.Points() {
		if p.Time == nil {
			continue
		}

		ts, err := gpx.ParsePointTime(*p.Time)
		if err != nil {
			return nil, fmt.Errorf("invalid time %q in track point: %s", *p.Time, err)
		}

		out = append(out, timedPoint{TrackPoint: p, ts: ts})
	}

	return out, nil
}

func waypointFromPoint(p gpx.TrackPoint, idx int) gpx.Waypoint {
	wp := gpx.Waypoint{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Elevation: p.Elevation,
		Name:      fmt.Sprintf("WPT%03d", idx),
	}
	if p.Time != nil {
		wp.Time = *p.Time
	}
	return wp
}

// convertFlat copies every track point of the document, timestamped or
// not, into a single waypoint file with one global name counter
func convertFlat(g *gpx.GPX, outputPath string) error {
	doc := gpx.NewWaypointFile()
	for _, p := range g.Points() {
		doc.Waypoints = append(doc.Waypoints, waypointFromPoint(p, len(doc.Waypoints)))
	}

	if err := writeWaypointFile(doc, outputPath); err != nil {
		return err
	}

	log.Printf("Converted %d track points to waypoints", len(doc.Waypoints))
	log.Printf("Output written to: %s", outputPath)
	return nil
}

// convertChunked sorts the timestamped track points and splits them into
// fixed-duration windows, one output file per window. The window re-anchors
// at the first point of every new chunk. outputBase is only used to derive
// the chunk file names.
func convertChunked(g *gpx.GPX, outputBase string, window time.Duration) error {
	points, err := collectTimedPoints(g)
	if err != nil {
		return err
	}

	if len(points) == 0 {
		log.Printf("No track points with a valid time found, no output written")
		return nil
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].ts.Before(points[j].ts) })

	var (
		buf        []timedPoint
		chunkNum   = 1
		chunkStart = points[0].ts
		total      int
	)

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}

		path := chunkFilePath(outputBase, chunkNum)
		doc := gpx.NewWaypointFile()
		for i, p := range buf {
			doc.Waypoints = append(doc.Waypoints, waypointFromPoint(p.TrackPoint, i))
		}

		if err := writeWaypointFile(doc, path); err != nil {
			return err
		}

		if cfg.Debug {
			log.Printf("Wrote chunk %02d: %d waypoints, %.3f km track distance (%s)",
				chunkNum, len(buf), chunkDistance(buf), path)
		}

		total += len(buf)
		return nil
	}

	for _, p := range points {
		if p.ts.Sub(chunkStart) >= window {
			if err := flush(); err != nil {
				return err
			}
			chunkNum++
			chunkStart = p.ts
			buf = buf[:0]
		}
		buf = append(buf, p)
	}

	if err := flush(); err != nil {
		return err
	}

	log.Printf("Converted %d track points to waypoints", total)
	log.Printf("Wrote %d chunk files", chunkNum)
	return nil
}

// chunkFilePath derives the per-chunk file name as a sibling of the
// requested output path: {stem}_chunk_{NN}.gpx
func chunkFilePath(base string, num int) string {
	stem := strings.TrimSuffix(filepath.Base(base), filepath.Ext(base))
	return filepath.Join(filepath.Dir(base), fmt.Sprintf("%s_chunk_%02d.gpx", stem, num))
}

func writeWaypointFile(doc *gpx.WaypointFile, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return doc.Write(f)
}

// chunkDistance sums the Haversine distance in kilometers between the
// consecutive points of a chunk. Points with unparsable coordinates are
// skipped, matching the undefined-behavior contract for malformed lat/lon.
func chunkDistance(points []timedPoint) float64 {
	var (
		dist             float64
		havePrev         bool
		prevLat, prevLon float64
	)

	for _, p := range points {
		lat, latErr := strconv.ParseFloat(p.Latitude, 64)
		lon, lonErr := strconv.ParseFloat(p.Longitude, 64)
		if latErr != nil || lonErr != nil {
			continue
		}

		if havePrev {
			dist += position.Haversine(prevLon, prevLat, lon, lat)
		}
		prevLat, prevLon, havePrev = lat, lon, true
	}

	return dist
}
