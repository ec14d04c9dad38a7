// Package coords parses "lat,lon" pairs given on the command line.
package coords

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/geodesy-tools/vincenty"
)

var ErrInvalidPoint = errors.New("invalid point")

// Parse reads a point written as "lat,lon" in decimal degrees.
func Parse(s string) (vincenty.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return vincenty.Point{}, fmt.Errorf("%w %q: want \"lat,lon\"", ErrInvalidPoint, s)
	}

	lat, err := parseFloat(parts[0])
	if err != nil {
		return vincenty.Point{}, fmt.Errorf("%w %q: latitude: %v", ErrInvalidPoint, s, err)
	}
	lon, err := parseFloat(parts[1])
	if err != nil {
		return vincenty.Point{}, fmt.Errorf("%w %q: longitude: %v", ErrInvalidPoint, s, err)
	}
	return vincenty.Point{Lat: lat, Lon: lon}, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a finite number")
	}
	return v, nil
}

// Format writes a point the way Parse reads it.
func Format(p vincenty.Point) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(p.Lon, 'f', -1, 64)
}

// Flag is a pflag.Value holding a point.
type Flag struct {
	Point vincenty.Point
	set   bool
}

func (f *Flag) String() string {
	if !f.set {
		return ""
	}
	return Format(f.Point)
}

func (f *Flag) Set(s string) error {
	p, err := Parse(s)
	if err != nil {
		return err
	}
	f.Point, f.set = p, true
	return nil
}

func (f *Flag) Type() string { return "lat,lon" }

// IsSet reports whether the flag was given.
func (f *Flag) IsSet() bool { return f.set }
