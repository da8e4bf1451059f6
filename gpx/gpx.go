package gpx

import (
	"encoding/xml"
	"io"
	"strings"
	"time"
)

// Namespace is the GPX 1.1 XML namespace used for input and output documents
const Namespace = "http://www.topografix.com/GPX/1/1"

// timeLayout matches the date-time part of a trkpt time element without
// any zone designator
const timeLayout = "2006-01-02T15:04:05"

// GPX represents the contents of an GPX file
type GPX struct {
	XMLName   xml.Name   `xml:"gpx"`
	Version   string     `xml:"version,attr"`
	Creator   string     `xml:"creator,attr"`
	Tracks    []Track    `xml:"trk"`
	Waypoints []Waypoint `xml:"wpt"`
}

// Track represents a single track inside a GPX file
type Track struct {
	XMLName  xml.Name  `xml:"trk"`
	Name     string    `xml:"name"`
	Segments []Segment `xml:"trkseg"`
}

// Segment represents a contiguous run of track points inside a track
type Segment struct {
	XMLName xml.Name     `xml:"trkseg"`
	Points  []TrackPoint `xml:"trkpt"`
}

// TrackPoint represents a single trkpt element. Values are kept as the raw
// document text so converted output preserves the input verbatim. Time is a
// pointer to tell an absent child (nil, point is dropped from chunking) from
// a present but empty one (parse failure, aborts the run).
type TrackPoint struct {
	XMLName   xml.Name `xml:"trkpt"`
	Latitude  string   `xml:"lat,attr"`
	Longitude string   `xml:"lon,attr"`
	Elevation string   `xml:"ele"`
	Time      *string  `xml:"time"`
}

// ParseGPXData reads the contents of the GPX file and returns a parsed version
func ParseGPXData(in io.Reader) (*GPX, error) {
	out := &GPX{}
	return out, xml.NewDecoder(in).Decode(out)
}

// Points returns every track point of the document in document order,
// flattened across all tracks and their segments
func (g *GPX) Points() []TrackPoint {
	var out []TrackPoint
	for _, trk := range g.Tracks {
		for _, seg := range trk.Segments {
			out = append(out, seg.Points...)
		}
	}
	return out
}

// ParsePointTime parses the text of a trkpt time element into a naive local
// instant. A trailing "Z" is replaced with the digit "0" before parsing and
// the displaced digit is consumed as part of a fractional second, so the
// wall-clock fields parse exactly as written. The substitution only affects
// parsing; code emitting the timestamp copies the original text.
func ParsePointTime(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if strings.HasSuffix(s, "Z") {
		s = s[:len(s)-1] + "0"
		if len(s) > len(timeLayout) && s[len(timeLayout)] != '.' {
			s = s[:len(timeLayout)] + "." + s[len(timeLayout):]
		}
	}
	return time.ParseInLocation(timeLayout, s, time.Local)
}
