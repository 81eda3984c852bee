package tpa_test

import (
	"math"
	"math/rand"
)

func nan() float64         { return math.NaN() }
func inf(sign int) float64 { return math.Inf(sign) }

func newTestRand() *rand.Rand { return rand.New(rand.NewSource(20260802)) }
