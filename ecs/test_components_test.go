package ecs_test

import "reflect"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type PlayerController struct{}

type AI struct {
	State int
}

// Custom primitive types for testing non-struct components
type Score int32
type Tag string

var (
	positionType = reflect.TypeFor[Position]()
	velocityType = reflect.TypeFor[Velocity]()
	nameType     = reflect.TypeFor[Name]()
	healthType   = reflect.TypeFor[Health]()
	aiType       = reflect.TypeFor[AI]()
	scoreType    = reflect.TypeFor[Score]()
	tagType      = reflect.TypeFor[Tag]()
)
