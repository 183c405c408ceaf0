package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/weft/ecs"
)

func NewQueryDebuggerComponent() *QueryDebuggerComponent {
	return &QueryDebuggerComponent{
		selectedTypeIDs: make(map[ecs.TypeID]bool),
	}
}

// Render draws a component-type picker and shows which archetypes and how
// many entities a query over the checked types would match.
func (qd *QueryDebuggerComponent) Render(world *ecs.World) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selectedTypeIDs = make(map[ecs.TypeID]bool)
	}

	for _, id := range world.Registry().TypeIDs() {
		selected := qd.selectedTypeIDs[id]
		if imgui.Checkbox(string(id), &selected) {
			if selected {
				qd.selectedTypeIDs[id] = true
			} else {
				delete(qd.selectedTypeIDs, id)
			}
		}
	}

	imgui.Separator()

	queryLayout := ecs.NewLayout(world.Registry())
	for id := range qd.selectedTypeIDs {
		if t, ok := world.Registry().TypeFor(id); ok {
			queryLayout.Register(t)
		}
	}

	if queryLayout.ComponentCount() == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	matching := qd.findMatchingArchetypes(world, queryLayout)
	totalEntities := 0
	for _, arch := range matching {
		totalEntities += arch.Len()
	}

	imgui.Text(fmt.Sprintf("Matching Archetypes: %d", len(matching)))
	imgui.Text(fmt.Sprintf("Matching Entities: %d", totalEntities))

	if imgui.TreeNodeStr("Archetype Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("QueryArchTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Layout Hash")
			imgui.TableSetupColumn("All Components")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, arch := range matching {
				imgui.TableNextRow()

				imgui.TableSetColumnIndex(0)
				imgui.Text(fmt.Sprintf("0x%X", arch.ID()))

				imgui.TableSetColumnIndex(1)
				typeIDs := arch.Layout().TypeIDs()
				names := make([]string, len(typeIDs))
				for i, id := range typeIDs {
					names[i] = string(id)
				}
				imgui.Text(strings.Join(names, ", "))

				imgui.TableSetColumnIndex(2)
				imgui.Text(fmt.Sprintf("%d", arch.Len()))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (qd *QueryDebuggerComponent) findMatchingArchetypes(world *ecs.World, queryLayout *ecs.Layout) []*ecs.Archetype {
	matching := make([]*ecs.Archetype, 0)
	for arch := range world.Archetypes().All() {
		if arch.Layout().IsCompatible(queryLayout) {
			matching = append(matching, arch)
		}
	}
	return matching
}
