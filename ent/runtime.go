// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codeready-toolchain/ranger/ent/run"
	"github.com/codeready-toolchain/ranger/ent/runevent"
	"github.com/codeready-toolchain/ranger/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescStreamTokens is the schema descriptor for stream_tokens field.
	runDescStreamTokens := runFields[11].Descriptor()
	// run.DefaultStreamTokens holds the default value on creation for the stream_tokens field.
	run.DefaultStreamTokens = runDescStreamTokens.Default.(bool)
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[16].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	// runDescUpdatedAt is the schema descriptor for updated_at field.
	runDescUpdatedAt := runFields[17].Descriptor()
	// run.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	run.DefaultUpdatedAt = runDescUpdatedAt.Default.(func() time.Time)
	// run.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	run.UpdateDefaultUpdatedAt = runDescUpdatedAt.UpdateDefault.(func() time.Time)
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescCreatedAt is the schema descriptor for created_at field.
	runeventDescCreatedAt := runeventFields[3].Descriptor()
	// runevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	runevent.DefaultCreatedAt = runeventDescCreatedAt.Default.(func() time.Time)
}
