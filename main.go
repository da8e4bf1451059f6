package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Luzifer/rconfig/v2"

	"github.com/Luzifer/gpx2wpt/gpx"
)

var (
	cfg = struct {
		Chunked        bool   `flag:"chunked,c" default:"false" description:"Split the output into fixed-duration chunk files"`
		ChunkSeconds   int64  `flag:"chunk-seconds" default:"120" description:"Duration of one chunk in seconds"`
		Debug          bool   `flag:"debug,d" default:"false" description:"Enable debug logging"`
		Output         string `flag:"output,o" description:"Output GPX file (default: <input>_waypoints.gpx)"`
		VersionAndExit bool   `flag:"version" default:"false" description:"Print version and exit"`
	}{}
	version = "dev"
)

func main() {
	if err := rconfig.ParseAndValidate(&cfg); err != nil {
		log.Fatalf("Unable to parse commandline options: %s", err)
	}

	if cfg.VersionAndExit {
		fmt.Printf("gpx2wpt %s\n", version)
		os.Exit(0)
	}

	args := rconfig.Args()
	if len(args) < 2 {
		log.Fatalf("Usage: gpx2wpt [options] <input.gpx>")
	}
	input := args[1]

	if _, err := os.Stat(input); err != nil {
		log.Fatalf("Error: Input file '%s' not found", input)
	}

	output := cfg.Output
	if output == "" {
		stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		output = filepath.Join(filepath.Dir(input), stem+"_waypoints.gpx")
	}

	gpsFile, err := os.Open(input)
	if err != nil {
		log.Fatalf("Unable to open your GPX file: %s", err)
	}
	defer gpsFile.Close()

	gpxData, err := gpx.ParseGPXData(gpsFile)
	if err != nil {
		log.Fatalf("Unable to parse your GPX file: %s", err)
	}

	if cfg.Chunked {
		err = convertChunked(gpxData, output, time.Duration(cfg.ChunkSeconds)*time.Second)
	} else {
		err = convertFlat(gpxData, output)
	}
	if err != nil {
		log.Fatalf("Error converting file: %s", err)
	}
}
