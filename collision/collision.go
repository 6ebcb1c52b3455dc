package collision

import (
	"github.com/femtodream/femtotables/cuts"
	"github.com/femtodream/femtotables/table"
)

// Table tags of the event-level tables.
var (
	Tag           = table.Tag{Origin: table.OriginAOD, Description: "FDCOLLISION"}
	MaskTag       = table.Tag{Origin: table.OriginAOD, Description: "FDCOLMASK"}
	DownSampleTag = table.Tag{Origin: table.OriginAOD, Description: "FDDOWNSAMPLE"}
)

// Collision is one processed event.
type Collision struct {
	// PosZ is the z position of the primary vertex in cm.
	PosZ float32
	// MultV0M is the V0M multiplicity estimator.
	MultV0M float32
	// MultNtr is the number of charged tracks as defined in the producer.
	MultNtr int32
	// Sphericity is the transverse sphericity of the event.
	Sphericity float32
	// MagField is the solenoid field in kG.
	MagField float32
}

// Validate implements table.Row. Collision rows carry no index columns and
// no closed enums, so there is nothing to reject.
func (c Collision) Validate(self table.Index, size int) error {
	return nil
}

// Mask is the per-collision event-mixing occupancy record: one bit group per
// track slot, set when the collision contains a particle passing that slot's
// selection.
type Mask struct {
	TrackOne   cuts.Mask
	TrackTwo   cuts.Mask
	TrackThree cuts.Mask
}

// Validate implements table.Row.
func (m Mask) Validate(self table.Index, size int) error {
	return nil
}

// DownSample flags a collision kept by the downsampling stage.
type DownSample struct {
	Keep bool
}

// Validate implements table.Row.
func (d DownSample) Validate(self table.Index, size int) error {
	return nil
}

func init() {
	table.Register(table.Descriptor{
		Name:   "FDCollisions",
		Origin: Tag.Origin,
		Tag:    Tag.Description,
		Columns: []string{
			"posZ", "multV0M", "multNtr", "sphericity", "magField",
		},
	})
	table.Register(table.Descriptor{
		Name:   "FDColMasks",
		Origin: MaskTag.Origin,
		Tag:    MaskTag.Description,
		Columns: []string{
			"bitmaskTrackOne", "bitmaskTrackTwo", "bitmaskTrackThree",
		},
	})
	table.Register(table.Descriptor{
		Name:    "FDDownSample",
		Origin:  DownSampleTag.Origin,
		Tag:     DownSampleTag.Description,
		Columns: []string{"downsample"},
	})
}
