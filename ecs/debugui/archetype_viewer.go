package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/weft/ecs"
)

type archetypeInfo struct {
	ID             uint64
	ComponentTypes []string
	EntityCount    int
	ComponentCount int
}

type archetypeViewerCache struct {
	archetypes         []archetypeInfo
	lastArchetypeCount int
	sortColumn         int
	sortAscending      bool
}

func NewArchetypeViewerComponent() *ArchetypeViewerComponent {
	return &ArchetypeViewerComponent{
		cache: &archetypeViewerCache{
			sortColumn:    3,
			sortAscending: false,
		},
		sortColumn:    3,
		sortAscending: false,
	}
}

// Render draws the archetype table and returns the archetype ID the user
// clicked this frame, if any.
func (av *ArchetypeViewerComponent) Render(world *ecs.World) *uint64 {
	if !imgui.BeginV("Archetype Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return nil
	}

	av.rebuildCacheIfNeeded(world)

	maxEntityCount := 0
	for _, arch := range av.cache.archetypes {
		if arch.EntityCount > maxEntityCount {
			maxEntityCount = arch.EntityCount
		}
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ArchetypeTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Layout Hash")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Comp Count")
		imgui.TableSetupColumn("Entity Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			av.cache.sortColumn = int(spec.ColumnIndex())
			av.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			av.sortColumn = av.cache.sortColumn
			av.sortAscending = av.cache.sortAscending
			av.sortArchetypes()
			sortSpecs.SetSpecsDirty(false)
		}

		var clickedArchID *uint64

		for _, arch := range av.cache.archetypes {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := av.selectedArchID != nil && *av.selectedArchID == arch.ID
			if imgui.SelectableBoolV(fmt.Sprintf("0x%X", arch.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				archIDCopy := arch.ID
				clickedArchID = &archIDCopy
				av.selectedArchID = &archIDCopy
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(arch.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", arch.ComponentCount))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", arch.EntityCount))

			if maxEntityCount > 0 {
				barWidth := float32(arch.EntityCount) / float32(maxEntityCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()

		imgui.End()
		return clickedArchID
	}

	imgui.End()
	return nil
}

func (av *ArchetypeViewerComponent) rebuildCacheIfNeeded(world *ecs.World) {
	currentArchetypeCount := world.Archetypes().Len()
	if av.cache.lastArchetypeCount != currentArchetypeCount {
		av.cache.archetypes = nil
		av.cache.lastArchetypeCount = currentArchetypeCount
	}

	if av.cache.archetypes == nil {
		av.rebuildCache(world)
	} else {
		av.updateEntityCounts(world)
	}
}

func (av *ArchetypeViewerComponent) rebuildCache(world *ecs.World) {
	av.cache.archetypes = make([]archetypeInfo, 0, world.Archetypes().Len())

	for arch := range world.Archetypes().All() {
		typeIDs := arch.Layout().TypeIDs()
		componentTypes := make([]string, len(typeIDs))
		for i, id := range typeIDs {
			componentTypes[i] = string(id)
		}

		av.cache.archetypes = append(av.cache.archetypes, archetypeInfo{
			ID:             arch.ID(),
			ComponentTypes: componentTypes,
			EntityCount:    arch.Len(),
			ComponentCount: len(componentTypes),
		})
	}

	av.sortArchetypes()
}

func (av *ArchetypeViewerComponent) updateEntityCounts(world *ecs.World) {
	for i := range av.cache.archetypes {
		arch := world.Archetypes().Get(av.cache.archetypes[i].ID)
		if arch == nil {
			continue
		}
		av.cache.archetypes[i].EntityCount = arch.Len()
	}

	if av.sortColumn == 3 {
		av.sortArchetypes()
	}
}

func (av *ArchetypeViewerComponent) sortArchetypes() {
	sort.Slice(av.cache.archetypes, func(i, j int) bool {
		a, b := av.cache.archetypes[i], av.cache.archetypes[j]
		var less bool

		switch av.cache.sortColumn {
		case 0:
			less = a.ID < b.ID
		case 1:
			less = strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		case 2:
			less = a.ComponentCount < b.ComponentCount
		default:
			less = a.EntityCount < b.EntityCount
		}

		if !av.cache.sortAscending {
			return !less
		}
		return less
	})
}
