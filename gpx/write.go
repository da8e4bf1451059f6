package gpx

import (
	"encoding/xml"
	"io"
)

// Waypoint represents a single waypoint inside a GPX file. Field order
// matters: the serializer emits children in struct order and converted
// waypoints carry ele, time, name in that sequence.
type Waypoint struct {
	XMLName   xml.Name `xml:"wpt"`
	Latitude  string   `xml:"lat,attr"`
	Longitude string   `xml:"lon,attr"`
	Elevation string   `xml:"ele,omitempty"`
	Time      string   `xml:"time,omitempty"`
	Name      string   `xml:"name"`
}

// WaypointFile is a waypoint-only GPX document as produced by the converter
type WaypointFile struct {
	XMLName   xml.Name   `xml:"gpx"`
	Version   string     `xml:"version,attr"`
	Creator   string     `xml:"creator,attr"`
	XMLNs     string     `xml:"xmlns,attr"`
	Waypoints []Waypoint `xml:"wpt"`
}

// NewWaypointFile creates an empty output document carrying the fixed
// version, creator and namespace attributes
func NewWaypointFile() *WaypointFile {
	return &WaypointFile{
		Version: "1.1",
		Creator: "GPX Converter",
		XMLNs:   Namespace,
	}
}

// Write serializes the document with an XML declaration and two-space
// indentation, UTF-8 encoded
func (w *WaypointFile) Write(out io.Writer) error {
	if _, err := io.WriteString(out, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(out)
	enc.Indent("", "  ")
	if err := enc.Encode(w); err != nil {
		return err
	}

	_, err := io.WriteString(out, "\n")
	return err
}
