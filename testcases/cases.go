package testcases

import "seehuhn.de/go/mandel"

// Scenario is the view used in the usage example of the mandelbrot
// command.
var Scenario = TestCase{
	Name: "usage_example",
	Viewport: mandel.Viewport{
		UpperLeft:  complex(-1.20, 0.35),
		LowerRight: complex(-1.00, 0.20),
	},
	Width:  320,
	Height: 200,
	Limit:  mandel.DefaultLimit,
}

var overviewCases = []TestCase{
	Scenario,
	{
		Name:     "whole_set",
		Viewport: region(-2.5, 1, -1.25, 1.25),
		Width:    140,
		Height:   100,
	},
	{
		Name:     "main_cardioid",
		Viewport: region(-0.75, 0.5, -0.6, 0.6),
		Width:    100,
		Height:   96,
	},
}

// classic landmarks, with dense detail near the boundary of the set
var landmarkCases = []TestCase{
	{
		Name:     "seahorse_valley",
		Viewport: region(-0.8, -0.7, 0.05, 0.15),
		Width:    96,
		Height:   96,
	},
	{
		Name:     "elephant_valley",
		Viewport: region(-1.85, -1.75, -0.10, -0.02),
		Width:    100,
		Height:   80,
	},
	{
		Name:     "spiral_minibrot",
		Viewport: region(-0.7435, -0.7420, 0.1310, 0.1325),
		Width:    96,
		Height:   96,
	},
	{
		Name:     "triple_spiral",
		Viewport: region(-0.7480, -0.7450, 0.0950, 0.0980),
		Width:    96,
		Height:   96,
	},
	{
		Name:     "valley_of_the_dragon",
		Viewport: region(-0.7400, -0.7350, 0.1800, 0.1850),
		Width:    96,
		Height:   96,
	},
	{
		Name:     "minibrot_in_mini_spiral",
		Viewport: region(-1.7390, -1.7375, -0.0235, -0.0220),
		Width:    96,
		Height:   96,
	},
}

// the same region with the corners given in all four orientations
var orientationCases = []TestCase{
	{
		Name:     "im_down",
		Viewport: mandel.Viewport{UpperLeft: complex(-2, 1.2), LowerRight: complex(0.6, -1.2)},
		Width:    104,
		Height:   96,
	},
	{
		Name:     "im_up",
		Viewport: mandel.Viewport{UpperLeft: complex(-2, -1.2), LowerRight: complex(0.6, 1.2)},
		Width:    104,
		Height:   96,
	},
	{
		Name:     "re_left",
		Viewport: mandel.Viewport{UpperLeft: complex(0.6, 1.2), LowerRight: complex(-2, -1.2)},
		Width:    104,
		Height:   96,
	},
	{
		Name:     "rotated",
		Viewport: mandel.Viewport{UpperLeft: complex(0.6, -1.2), LowerRight: complex(-2, 1.2)},
		Width:    104,
		Height:   96,
	},
}

var limitCases = []TestCase{
	{
		Name:     "limit_1",
		Viewport: region(-2.5, 1, -1.25, 1.25),
		Width:    70,
		Height:   50,
		Limit:    1,
	},
	{
		Name:     "limit_16",
		Viewport: region(-2.5, 1, -1.25, 1.25),
		Width:    70,
		Height:   50,
		Limit:    16,
	},
	{
		Name:     "limit_100",
		Viewport: region(-0.8, -0.7, 0.05, 0.15),
		Width:    64,
		Height:   64,
		Limit:    100,
	},
}
