// Package units provides area, volume, and flow conversion functions.
package units

import (
	"github.com/minerehab/closure-forecast/pkg/constants"
)

// HaToM2 converts an area in hectares to square metres.
func HaToM2(hectares float64) float64 {
	return hectares * constants.M2PerHa
}

// M2ToHa converts an area in square metres to hectares.
func M2ToHa(squareMetres float64) float64 {
	return squareMetres / constants.M2PerHa
}

// MLToM3 converts a volume in megalitres to cubic metres.
func MLToM3(megalitres float64) float64 {
	return megalitres * constants.M3PerML
}

// M3ToML converts a volume in cubic metres to megalitres.
func M3ToML(cubicMetres float64) float64 {
	return cubicMetres / constants.M3PerML
}

// AnnualiseDailyFlow converts a daily flow in ML/day to an annual volume in ML.
func AnnualiseDailyFlow(mlPerDay float64) float64 {
	return mlPerDay * constants.DaysPerYear
}
