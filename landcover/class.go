// SPDX-License-Identifier: MIT

package landcover

import (
	"slices"
	"strconv"

	"github.com/katalvlaran/landmode/matrix"
)

// Class is a land-cover label code.
type Class uint8

// Class codes emitted by the decision tree.
const (
	Shadow          Class = 0
	Developed       Class = 11
	BeachSandSoil   Class = 21
	Mud             Class = 22
	DeadVegetation  Class = 30
	MarshGrass      Class = 31
	UplandForest    Class = 32
	ForestedWetland Class = 33
	DeepWater       Class = 51
	SoftBottom      Class = 52
	SoftBottomShoal Class = 53
	Seagrass        Class = 54
	TurbidWater     Class = 55
)

var classNames = map[Class]string{
	Shadow:          "Shadow",
	Developed:       "Developed",
	BeachSandSoil:   "Beach/Sand/Soil",
	Mud:             "Mud",
	DeadVegetation:  "Dead vegetation",
	MarshGrass:      "Marsh grass",
	UplandForest:    "Upland forest/grass",
	ForestedWetland: "Forested wetland",
	DeepWater:       "Deep water",
	SoftBottom:      "Soft bottom",
	SoftBottomShoal: "Soft bottom (shoal)",
	Seagrass:        "Seagrass",
	TurbidWater:     "Turbid water",
}

// String returns the class name, or "Class(n)" for unknown codes.
func (c Class) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}

	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// Known reports whether c is one of the catalogued codes.
func (c Class) Known() bool {
	_, ok := classNames[c]

	return ok
}

// Classes returns every catalogued code in ascending order.
func Classes() []Class {
	out := make([]Class, 0, len(classNames))
	for c := range classNames {
		out = append(out, c)
	}
	slices.Sort(out)

	return out
}

// Tally counts pixels per class in a label grid. Codes outside the
// catalogue are counted under their raw value.
func Tally(labels *matrix.Labels) map[Class]int {
	out := make(map[Class]int)
	if labels == nil {
		return out
	}
	for v, n := range labels.Histogram() {
		out[Class(v)] = n
	}

	return out
}
