package octree

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/octree/bound"
)

const benchSize = 4096

// benchPositions spreads benchSize distinct even points over [0, 4096).
func benchPositions() []bound.TUVec3[uint32] {
	rng := rand.New(rand.NewSource(7))

	seen := make(map[bound.TUVec3[uint32]]struct{}, benchSize)
	positions := make([]bound.TUVec3[uint32], 0, benchSize)
	for len(positions) < benchSize {
		p := bound.NewTUVec3(
			uint32(rng.Intn(2048))*2,
			uint32(rng.Intn(2048))*2,
			uint32(rng.Intn(2048))*2,
		)
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		positions = append(positions, p)
	}

	return positions
}

func benchTree(b *testing.B, positions []bound.TUVec3[uint32]) *Octree[uint32, cell[uint32]] {
	b.Helper()

	tree, err := FromAabbWithCapacity[uint32, cell[uint32]](
		bound.NewAabbUnchecked(bound.Splat[uint32](2048), 2048), benchSize)
	if err != nil {
		b.Fatal(err)
	}
	for _, p := range positions {
		if _, err := tree.Insert(cell[uint32]{position: p}); err != nil {
			b.Fatal(err)
		}
	}

	return tree
}

func BenchmarkInsert(b *testing.B) {
	positions := benchPositions()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree, _ := FromAabbWithCapacity[uint32, cell[uint32]](
			bound.NewAabbUnchecked(bound.Splat[uint32](2048), 2048), benchSize)
		for _, p := range positions {
			if _, err := tree.Insert(cell[uint32]{position: p}); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkRemove(b *testing.B) {
	positions := benchPositions()
	ids := make([]ElementId, benchSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tree := benchTree(b, positions)
		for j, p := range positions {
			id, _ := tree.Find(p)
			ids[j] = id
		}
		b.StartTimer()

		for _, id := range ids {
			if err := tree.Remove(id); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkFind(b *testing.B) {
	positions := benchPositions()
	tree := benchTree(b, positions)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := positions[i%benchSize]
		if _, ok := tree.Find(p); !ok {
			b.Fatal("position not found")
		}
	}
}

func BenchmarkRayCast(b *testing.B) {
	positions := benchPositions()
	tree := benchTree(b, positions)

	ray := bound.NewRay(mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{1, 1, 1}, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree.RayCast(&ray)
	}
}

func BenchmarkIntersectSphere(b *testing.B) {
	positions := benchPositions()
	tree := benchTree(b, positions)

	sphere := bound.NewSphere(mgl64.Vec3{2048, 2048, 2048}, 256)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree.IntersectSphere(&sphere)
	}
}
