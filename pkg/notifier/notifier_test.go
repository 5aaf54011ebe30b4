// pkg/notifier/notifier_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test descriptor equality and storage-record round-trips

package notifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theodox/attributeEvents/pkg/errors"
	"github.com/theodox/attributeEvents/pkg/notifier"
	"github.com/theodox/attributeEvents/pkg/types"
)

func TestRoundTrip(t *testing.T) {
	d := notifier.New("translate", "notify")

	record, err := d.StorageRecord()
	require.NoError(t, err)

	restored, err := notifier.FromStorageRecord(record)
	require.NoError(t, err)

	assert.True(t, d.Equal(restored))
	assert.Equal(t, "translate", restored.Attribute())
	assert.Equal(t, "notify", restored.HandlerName())
}

func TestRoundTripWithData(t *testing.T) {
	d := notifier.NewWithData("visibility", "fade", types.Context{
		"duration": 0.5,
		"easing":   "cubic",
	})

	record, err := d.StorageRecord()
	require.NoError(t, err)

	restored, err := notifier.FromStorageRecord(record)
	require.NoError(t, err)

	assert.True(t, d.Equal(restored))
	data := restored.Data()
	assert.Equal(t, 0.5, data["duration"])
	assert.Equal(t, "cubic", data["easing"])
}

func TestEqualityIgnoresData(t *testing.T) {
	plain := notifier.New("translate", "notify")
	withData := notifier.NewWithData("translate", "notify", types.Context{"extra": true})

	assert.True(t, plain.Equal(withData))
	assert.Equal(t, plain.Key(), withData.Key())
}

func TestInequality(t *testing.T) {
	d := notifier.New("translate", "notify")

	assert.False(t, d.Equal(notifier.New("rotate", "notify")))
	assert.False(t, d.Equal(notifier.New("translate", "other")))
}

func TestUnknownFieldsTolerated(t *testing.T) {
	// A record written by a future version with extra top-level fields
	// must still load; the extras land in the payload.
	record := `{"_attribute":"scale","_handler":"resize","_priority":7,"label":"x"}`

	d, err := notifier.FromStorageRecord(record)
	require.NoError(t, err)

	assert.Equal(t, "scale", d.Attribute())
	assert.Equal(t, "resize", d.HandlerName())
	assert.Equal(t, float64(7), d.Data()["_priority"])
	assert.Equal(t, "x", d.Data()["label"])
}

func TestMalformedRecords(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{"not json", "not json at all"},
		{"json but not an object", `["translate","notify"]`},
		{"missing attribute", `{"_handler":"notify"}`},
		{"missing handler", `{"_attribute":"translate"}`},
		{"attribute not a string", `{"_attribute":3,"_handler":"notify"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := notifier.FromStorageRecord(tt.record)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedRecord))
		})
	}
}

func TestDataIsCopied(t *testing.T) {
	payload := types.Context{"count": 1}
	d := notifier.NewWithData("translate", "notify", payload)

	payload["count"] = 99
	assert.Equal(t, 1, d.Data()["count"], "constructor must copy the payload")

	out := d.Data()
	out["count"] = 99
	assert.Equal(t, 1, d.Data()["count"], "accessor must return a copy")
}

func TestListRoundTrip(t *testing.T) {
	descriptors := []notifier.Descriptor{
		notifier.New("translate", "notify"),
		notifier.NewWithData("rotate", "spin", types.Context{"axis": "y"}),
	}

	records, err := notifier.EncodeList(descriptors)
	require.NoError(t, err)
	require.Len(t, records, 2)

	restored, err := notifier.DecodeList(records)
	require.NoError(t, err)
	require.Len(t, restored, 2)

	// order preserved
	assert.True(t, descriptors[0].Equal(restored[0]))
	assert.True(t, descriptors[1].Equal(restored[1]))
}

func TestDecodeListReportsIndex(t *testing.T) {
	good, err := notifier.New("translate", "notify").StorageRecord()
	require.NoError(t, err)

	_, err = notifier.DecodeList([]string{good, "garbage"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedRecord))
	assert.Equal(t, 1, errors.GetErrorDetails(err)["index"])
}

func TestContains(t *testing.T) {
	list := []notifier.Descriptor{
		notifier.New("translate", "notify"),
	}

	assert.True(t, notifier.Contains(list, notifier.NewWithData("translate", "notify", types.Context{"x": 1})))
	assert.False(t, notifier.Contains(list, notifier.New("rotate", "notify")))
}
