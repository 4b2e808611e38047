package main

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/octree"
	"github.com/akmonengine/octree/bound"
)

// Marker - A named point placed into the scene
type Marker struct {
	Name string
	At   bound.TUVec3[uint8]
}

func (m Marker) Position() bound.TUVec3[uint8] {
	return m.At
}

func main() {
	// A 32x32x32 scene: center (16,16,16), half size 16.
	root, err := bound.NewAabb(bound.Splat[uint8](16), 16)
	if err != nil {
		log.Fatal(err)
	}

	tree, err := octree.FromAabbWithCapacity[uint8, Marker](root, 16)
	if err != nil {
		log.Fatal(err)
	}

	markers := []Marker{
		{Name: "crate", At: bound.NewTUVec3[uint8](1, 1, 1)},
		{Name: "barrel", At: bound.NewTUVec3[uint8](8, 8, 8)},
		{Name: "lamp", At: bound.NewTUVec3[uint8](1, 7, 1)},
		{Name: "door", At: bound.NewTUVec3[uint8](20, 4, 20)},
	}

	fmt.Println("=== Inserting markers ===")
	for _, m := range markers {
		id, err := tree.Insert(m)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("  %-6s -> %s at %s\n", m.Name, id, m.At)
	}
	fmt.Printf("tree holds %d elements in %d nodes\n\n", tree.Len(), tree.NodeCount())

	fmt.Println("=== Ray cast ===")
	ray := bound.NewRay(mgl64.Vec3{1.5, 30.0, 1.5}, mgl64.Vec3{0, -1, 0}, 100)
	hit := tree.RayCast(&ray)
	if hit.Hit {
		m, _ := tree.GetElement(hit.Element)
		fmt.Printf("  ray from y=30 straight down hits %q at distance %.1f\n\n", m.Name, hit.Distance)
	}

	fmt.Println("=== Box query around the lower corner ===")
	box := bound.NewAABB(mgl64.Vec3{2, 2, 2}, mgl64.Vec3{4, 4, 4})
	for _, id := range tree.IntersectAABB(&box) {
		m, _ := tree.GetElement(id)
		fmt.Printf("  %s overlaps the box\n", m.Name)
	}
	fmt.Println()

	fmt.Println("=== Neighbour pairs within 7 units ===")
	for _, pair := range tree.FindPairs(7) {
		a, _ := tree.GetElement(pair.A)
		b, _ := tree.GetElement(pair.B)
		fmt.Printf("  %s <-> %s\n", a.Name, b.Name)
	}
	fmt.Println()

	fmt.Println("=== Removing the lamp ===")
	if id, ok := tree.Find(bound.NewTUVec3[uint8](1, 7, 1)); ok {
		if err := tree.Remove(id); err != nil {
			log.Fatal(err)
		}
	}
	hit = tree.RayCast(&ray)
	if hit.Hit {
		m, _ := tree.GetElement(hit.Element)
		fmt.Printf("  the same ray now hits %q at distance %.1f\n", m.Name, hit.Distance)
	}
}
