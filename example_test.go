package vincenty_test

import (
	"errors"
	"fmt"

	"github.com/geodesy-tools/vincenty"
)

func ExampleEllipsoid_Inverse() {
	res, err := vincenty.WGS84.Inverse(
		vincenty.Point{Lat: 23.776939, Lon: 97.724721},
		vincenty.Point{Lat: 24.374530, Lon: 84.144159},
	)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Distance: %.3f m\n", res.Distance)
	fmt.Printf("Initial bearing: %.4f°\n", res.InitialBearing)
	fmt.Printf("Final bearing: %.4f°\n", res.FinalBearing)
	// Output:
	// Distance: 1382071.739 m
	// Initial bearing: 275.5120°
	// Final bearing: 269.9500°
}

func ExampleEllipsoid_Direct() {
	res, err := vincenty.WGS84.Direct(vincenty.Point{Lat: 23.776939, Lon: 97.724721}, 45, 1500)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Latitude: %.8f°\n", res.Point.Lat)
	fmt.Printf("Longitude: %.8f°\n", res.Point.Lon)
	fmt.Printf("Reverse bearing: %.4f°\n", res.ReverseBearing)
	// Output:
	// Latitude: 23.78651528°
	// Longitude: 97.73512790°
	// Reverse bearing: 45.0042°
}

func ExampleEllipsoid_Interpolate() {
	pts, err := vincenty.WGS84.Interpolate(
		vincenty.Point{Lat: 23.776939, Lon: 97.724721},
		vincenty.Point{Lat: 24.374530, Lon: 84.144159},
		[]float64{0, 250000, 500000},
	)
	if err != nil {
		panic(err)
	}
	for _, p := range pts {
		fmt.Printf("%.6f,%.6f\n", p.Lat, p.Lon)
	}
	// Output:
	// 23.776939,97.724721
	// 23.974370,95.279489
	// 24.132728,92.827536
}

func ExampleConvergenceError() {
	_, err := vincenty.WGS84.Inverse(vincenty.Point{Lat: 0, Lon: 0}, vincenty.Point{Lat: 0, Lon: 180})
	fmt.Println(errors.Is(err, vincenty.ErrNoConvergence))
	// Output:
	// true
}
