// Command ecs-stressgen emits the generated component and system definitions
// used by ecs-stress. Regenerate after changing the counts:
//
//	go run ./cmd/ecs-stressgen -components 16 -systems 4 -out cmd/ecs-stress/components_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

const fileTemplate = `// Code generated by ecs-stressgen. DO NOT EDIT.

package {{.Package}}

import (
	"math/rand"
	"reflect"

	"github.com/plus3/weft/ecs"
)

const (
	GeneratedComponentCount = {{len .Components}}
	GeneratedSystemCount    = {{len .Systems}}
)

{{range .Components}}
type StressComponent{{.}} struct {
	X     float64
	Y     float64
	Count int64
}
{{end}}

var generatedTypes = []reflect.Type{
{{- range .Components}}
	reflect.TypeFor[StressComponent{{.}}](),
{{- end}}
}

var generatedFactories = []func() any{
{{- range .Components}}
	func() any { return &StressComponent{{.}}{} },
{{- end}}
}

// SpawnRandomEntity spawns one entity carrying numComponents distinct
// randomly chosen generated component types.
func SpawnRandomEntity(world *ecs.World, rng *rand.Rand, numComponents int) ecs.Entity {
	if numComponents > len(generatedFactories) {
		numComponents = len(generatedFactories)
	}
	components := make([]any, 0, numComponents)
	for _, idx := range rng.Perm(len(generatedFactories))[:numComponents] {
		components = append(components, generatedFactories[idx]())
	}
	return world.Spawn(components...)
}

// ChurnRandomEntities swaps one component type for another on up to count
// entities, forcing archetype migrations through batched views.
func ChurnRandomEntities(world *ecs.World, rng *rand.Rand, count int) {
	fromIdx := rng.Intn(len(generatedTypes))
	toIdx := rng.Intn(len(generatedTypes))
	entities := world.Query(nil, generatedTypes[fromIdx])
	if len(entities) == 0 {
		return
	}
	if count > len(entities) {
		count = len(entities)
	}
	for i := 0; i < count; i++ {
		e := entities[rng.Intn(len(entities))]
		_ = world.View(e).Batch(func(v *ecs.EntityView) error {
			if err := v.RemoveComponents(generatedTypes[fromIdx]); err != nil {
				return err
			}
			return v.AddComponents(generatedFactories[toIdx]())
		})
	}
}

{{range .Systems}}
func newGeneratedSystem{{.Index}}() *ecs.System {
	return &ecs.System{
		Name:  "stress-system-{{.Index}}",
		Query: []reflect.Type{generatedTypes[{{.A}}], generatedTypes[{{.B}}]},
		Run: func(_ *ecs.World, _ ecs.Entity, components []any) {
			a := components[0].(*StressComponent{{.AName}})
			b := components[1].(*StressComponent{{.BName}})
			a.X += b.Y * 0.5
			a.Y += b.X * 0.5
			a.Count++
		},
	}
}
{{end}}

// RegisterAllGeneratedSystems registers every generated system on the
// scheduler.
func RegisterAllGeneratedSystems(scheduler *ecs.Scheduler) error {
	systems := []*ecs.System{
{{- range .Systems}}
		newGeneratedSystem{{.Index}}(),
{{- end}}
	}
	for _, s := range systems {
		if err := scheduler.AddSystem(s); err != nil {
			return err
		}
	}
	return nil
}
`

type systemSpec struct {
	Index string
	A     int
	B     int
	AName string
	BName string
}

type templateData struct {
	Package    string
	Components []string
	Systems    []systemSpec
}

func main() {
	componentCount := flag.Int("components", 16, "Number of component types to generate.")
	systemCount := flag.Int("systems", 4, "Number of systems to generate.")
	pkg := flag.String("package", "main", "Package name for the generated file.")
	out := flag.String("out", "components_gen.go", "Output path for the generated file.")
	flag.Parse()

	if *componentCount < 2 {
		log.Fatal("need at least 2 components")
	}
	if *systemCount*2 > *componentCount {
		log.Fatalf("%d systems need %d components, have %d", *systemCount, *systemCount*2, *componentCount)
	}

	data := templateData{
		Package:    *pkg,
		Components: make([]string, 0, *componentCount),
		Systems:    make([]systemSpec, 0, *systemCount),
	}
	for i := 0; i < *componentCount; i++ {
		data.Components = append(data.Components, fmt.Sprintf("%02d", i))
	}
	// Each system reads and writes a disjoint pair of component types.
	for i := 0; i < *systemCount; i++ {
		data.Systems = append(data.Systems, systemSpec{
			Index: fmt.Sprintf("%02d", i),
			A:     2 * i,
			B:     2*i + 1,
			AName: fmt.Sprintf("%02d", 2*i),
			BName: fmt.Sprintf("%02d", 2*i+1),
		})
	}

	tmpl, err := template.New("components_gen").Parse(fileTemplate)
	if err != nil {
		log.Fatalf("Failed to parse template: %v", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Fatalf("Failed to execute template: %v", err)
	}

	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("Failed to format generated code: %v", err)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("Wrote %s (%d components, %d systems)", *out, *componentCount, *systemCount)
}
