package femtotables_test

import (
	"context"
	"fmt"
	"log"

	"github.com/femtodream/femtotables"
	"github.com/femtodream/femtotables/collision"
	"github.com/femtodream/femtotables/mixing"
	"github.com/femtodream/femtotables/particle"
	"github.com/femtodream/femtotables/table"
)

// Example_builder demonstrates creating a dataset with the fluent builder.
func Example_builder() {
	ds := femtotables.New().
		WithCapacity(1024). // Rows preallocated per table
		Build()

	fmt.Printf("dataset ready, %d collisions\n", ds.Collisions().Len())
	// Output: dataset ready, 0 collisions
}

// Example_fillEvent demonstrates filling one event and its tracks.
func Example_fillEvent() {
	ds := femtotables.New().Build()

	col, err := ds.AddCollision(collision.Collision{
		PosZ:    1.5,
		MultV0M: 2100,
		MultNtr: 63,
	})
	if err != nil {
		log.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		_, err := ds.AddParticle(particle.Particle{
			CollisionID: col,
			Pt:          0.5 + float32(i)*0.3,
			Kind:        particle.KindTrack,
		})
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := ds.Validate(context.Background()); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("event with %d tracks\n", ds.Particles().Len())
	// Output: event with 3 tracks
}

// Example_derivedMomentum demonstrates the lazily derived momentum components.
func Example_derivedMomentum() {
	p := particle.Particle{Pt: 2.0, Eta: 0, Phi: 0, Kind: particle.KindTrack}

	fmt.Printf("px=%.1f py=%.1f pz=%.1f p=%.1f\n", p.Px(), p.Py(), p.Pz(), p.P())
	// Output: px=0.0 py=2.0 pz=0.0 p=2.0
}

// Example_cutSelection demonstrates selecting tracks by cut bits.
func Example_cutSelection() {
	ds := femtotables.New().Build()
	col, _ := ds.AddCollision(collision.Collision{})

	ds.AddParticle(particle.Particle{CollisionID: col, Kind: particle.KindTrack, Cut: 0b011})
	ds.AddParticle(particle.Particle{CollisionID: col, Kind: particle.KindTrack, Cut: 0b001})
	ds.AddParticle(particle.Particle{CollisionID: col, Kind: particle.KindTrack, Cut: 0b111})

	passing := ds.ParticlesPassing(0, 1)
	fmt.Printf("%d of %d tracks pass\n", passing.GetCardinality(), ds.Particles().Len())
	// Output: 2 of 3 tracks pass
}

// Example_eventMixing demonstrates grouping collisions into mixing pools.
func Example_eventMixing() {
	ds := femtotables.New().Build()

	bins := []int32{4, 4, 9}
	for _, bin := range bins {
		if _, err := ds.AddCollision(collision.Collision{}); err != nil {
			log.Fatal(err)
		}
		if _, err := ds.AddHash(mixing.Hash{Bin: bin}); err != nil {
			log.Fatal(err)
		}
	}

	var partners []table.Index
	for c := range ds.Pools().Partners(4, 0) {
		partners = append(partners, c)
	}

	fmt.Printf("collision 0 mixes with %d partner(s)\n", len(partners))
	// Output: collision 0 mixes with 1 partner(s)
}
