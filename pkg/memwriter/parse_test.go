package memwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/pkg/models"
)

func TestDecodeOpsStrictJSON(t *testing.T) {
	raw := `[
		{"op":"add","module":"preferences","key":"favorite_color","value":"teal","level":1,"confidence":0.95},
		{"op":"delete","module":"projects","key":"old_launch"},
		{"op":"touch","module":"identity","key":"name"}
	]`

	ops, err := decodeOps(raw)
	require.NoError(t, err)
	require.Len(t, ops, 3)

	assert.Equal(t, models.MemoryOpAdd, ops[0].Op)
	assert.Equal(t, "preferences", ops[0].Module)
	assert.Equal(t, "favorite_color", ops[0].Key)
	assert.Equal(t, "teal", ops[0].Value)
	require.NotNil(t, ops[0].Level)
	assert.Equal(t, 1, *ops[0].Level)
	require.NotNil(t, ops[0].Confidence)
	assert.InDelta(t, 0.95, *ops[0].Confidence, 0.001)

	assert.Equal(t, models.MemoryOpDelete, ops[1].Op)
	assert.Equal(t, models.MemoryOpTouch, ops[2].Op)
}

func TestDecodeOpsToleratesLooseSyntax(t *testing.T) {
	// Trailing commas and unquoted keys are common in JSON-only mode.
	raw := `[
		{op: "add", module: "preferences", key: "tone", value: "casual",},
	]`

	ops, err := decodeOps(raw)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "casual", ops[0].Value)
}

func TestDecodeOpsUnwrapsObjectsAndFences(t *testing.T) {
	wrapped := `{"operations": [{"op":"add","module":"identity","key":"name","value":"Sam"}]}`
	ops, err := decodeOps(wrapped)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "name", ops[0].Key)

	fenced := "Here is what I extracted:\n```json\n[{\"op\":\"touch\",\"module\":\"identity\",\"key\":\"name\"}]\n```\nDone."
	ops, err = decodeOps(fenced)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.MemoryOpTouch, ops[0].Op)

	// Brackets inside string values must not end the block early.
	tricky := `prose before [{"op":"add","module":"projects","key":"notes","value":"uses [brackets] and \"quotes\""}] prose after`
	ops, err = decodeOps(tricky)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, `uses [brackets] and "quotes"`, ops[0].Value)
}

func TestDecodeOpsFoldsFieldAliases(t *testing.T) {
	raw := `[
		{"action":"ADD","category":"Preferences","memory_key":"Reply Length","new_value":"short"},
		{"type":"remove","module":"projects","name":"finished-launch"},
		{"op":"refresh","module":"identity","key":"name"},
		{"op":"confirm","module":"identity","key":"pronouns"},
		{"op":"archive","module":"environment","key":"old_city"}
	]`

	ops, err := decodeOps(raw)
	require.NoError(t, err)
	require.Len(t, ops, 5)

	assert.Equal(t, models.MemoryOpAdd, ops[0].Op)
	assert.Equal(t, "preferences", ops[0].Module)
	assert.Equal(t, "reply_length", ops[0].Key, "keys normalise to snake_case")
	assert.Equal(t, "short", ops[0].Value)

	assert.Equal(t, models.MemoryOpDelete, ops[1].Op)
	assert.Equal(t, "finished_launch", ops[1].Key)
	assert.Equal(t, models.MemoryOpTouch, ops[2].Op)
	assert.Equal(t, models.MemoryOpTouch, ops[3].Op)
	assert.Equal(t, models.MemoryOpDelete, ops[4].Op)
}

func TestDecodeOpsNormalizesLevelsAndConfidence(t *testing.T) {
	raw := `[
		{"op":"add","module":"identity","key":"a","value":"x","level":9,"confidence":"0.8"},
		{"op":"add","module":"identity","key":"b","value":"x","level":-2,"confidence":1.7},
		{"op":"add","module":"identity","key":"c","value":"x"}
	]`

	ops, err := decodeOps(raw)
	require.NoError(t, err)
	require.Len(t, ops, 3)

	require.NotNil(t, ops[0].Level)
	assert.Equal(t, 5, *ops[0].Level, "levels clamp to the valid range")
	require.NotNil(t, ops[0].Confidence, "string-encoded numbers still parse")
	assert.InDelta(t, 0.8, *ops[0].Confidence, 0.001)

	require.NotNil(t, ops[1].Level)
	assert.Equal(t, 0, *ops[1].Level)
	assert.Nil(t, ops[1].Confidence, "out-of-range confidence is dropped, not clamped")

	assert.Nil(t, ops[2].Level, "omitted level stays unset for the applier to default")
	assert.Nil(t, ops[2].Confidence)
}

func TestDecodeOpsSkipsEntriesWithoutVerbs(t *testing.T) {
	raw := `[
		{"module":"identity","key":"name","value":"Sam"},
		{"op":"add","module":"identity","key":"name","value":"Sam"}
	]`

	ops, err := decodeOps(raw)
	require.NoError(t, err)
	assert.Len(t, ops, 1)
}

func TestDecodeOpsErrors(t *testing.T) {
	_, err := decodeOps("")
	assert.Error(t, err)

	_, err = decodeOps("I found nothing worth remembering in this conversation.")
	assert.Error(t, err)

	_, err = decodeOps("almost an array [ but it never closes")
	assert.Error(t, err)
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "preferred_language", normalizeKey("Preferred Language"))
	assert.Equal(t, "preferred_language", normalizeKey("preferred-language"))
	assert.Equal(t, "preferred_language", normalizeKey("  preferred_language  "))
}

func TestRejectOp(t *testing.T) {
	lvl := 1
	valid := models.MemoryOp{Op: models.MemoryOpAdd, Module: "preferences", Key: "favorite_color", Value: "teal", Level: &lvl}
	assert.Empty(t, rejectOp(valid))

	cases := []struct {
		name   string
		mutate func(*models.MemoryOp)
		reason string
	}{
		{"unknown verb", func(o *models.MemoryOp) { o.Op = "merge" }, "unknown_op"},
		{"unknown module", func(o *models.MemoryOp) { o.Module = "astrology" }, "unknown_module"},
		{"uppercase key", func(o *models.MemoryOp) { o.Key = "Favorite_Color" }, "invalid_key"},
		{"leading digit", func(o *models.MemoryOp) { o.Key = "1color" }, "invalid_key"},
		{"empty key", func(o *models.MemoryOp) { o.Key = "" }, "invalid_key"},
		{"missing value", func(o *models.MemoryOp) { o.Value = "" }, "missing_value"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			op := valid
			tc.mutate(&op)
			assert.Equal(t, tc.reason, rejectOp(op))
		})
	}

	// Deletes and touches carry no value.
	assert.Empty(t, rejectOp(models.MemoryOp{Op: models.MemoryOpDelete, Module: "projects", Key: "old_launch"}))
	assert.Empty(t, rejectOp(models.MemoryOp{Op: models.MemoryOpTouch, Module: "identity", Key: "name"}))
}
