package debugui

import (
	"github.com/plus3/weft/ecs"
)

type EntityBrowserComponent struct {
	cache              *entityBrowserCache
	selectedEntity     ecs.Entity
	filterText         string
	filterArchetypeID  *uint64
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct {
	selectedEntity ecs.Entity
}

type ArchetypeViewerComponent struct {
	cache          *archetypeViewerCache
	selectedArchID *uint64
	sortColumn     int
	sortAscending  bool
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

type QueryDebuggerComponent struct {
	selectedTypeIDs map[ecs.TypeID]bool
}
