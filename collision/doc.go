// Package collision declares the event-level rows of the derived data model.
//
// One Collision row is produced per processed event and is immutable
// thereafter; every other table references it through its positional index.
// The auxiliary Mask and DownSample tables are joinable companions produced
// for event-mixing bookkeeping and downsampled processing.
package collision
