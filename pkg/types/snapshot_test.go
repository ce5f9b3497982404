package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotWithDoesNotMutate(t *testing.T) {
	base := Snapshot{"approvalRequired": Bool(true)}

	next := base.With("responseTiming", String("immediate-auto"))

	assert.Len(t, base, 1, "original snapshot must be untouched")
	assert.Equal(t, String("immediate-auto"), next.Get("responseTiming"))
	assert.Equal(t, Bool(true), next.Get("approvalRequired"))
}

func TestSnapshotGet(t *testing.T) {
	var nilSnap Snapshot
	assert.True(t, nilSnap.Get("anything").IsAbsent())
	assert.True(t, Snapshot{}.Get("missing").IsAbsent())
}

func TestSnapshotMergeAndFields(t *testing.T) {
	a := Snapshot{"b": String("1"), "a": String("2")}
	b := Snapshot{"a": String("3"), "c": Bool(false)}

	merged := a.Merge(b)

	assert.Equal(t, []string{"a", "b", "c"}, merged.Fields())
	assert.Equal(t, String("3"), merged.Get("a"))
	assert.Equal(t, String("2"), a.Get("a"))
}

func TestSnapshotFromMap(t *testing.T) {
	snap, skipped := SnapshotFromMap(map[string]interface{}{
		"engagementStyle": "balanced",
		"maxPosts":        int64(4),
		"topics":          []interface{}{"go", "rust"},
		"empty":           nil,
	})

	assert.Equal(t, String("balanced"), snap.Get("engagementStyle"))
	assert.Equal(t, Number(4), snap.Get("maxPosts"))
	assert.Equal(t, []string{"empty", "topics"}, skipped)
}
