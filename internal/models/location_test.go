package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_ReviewsSerialization(t *testing.T) {
	// List context: reviews are never loaded, so the field is omitted
	// rather than claiming the location has none.
	listItem := Location{ID: 1, Name: "Central Cafe"}
	data, err := json.Marshal(listItem)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"reviews"`)

	// Full shape: an addressed entity with zero reviews still carries an
	// empty array.
	detail := Location{ID: 1, Name: "Central Cafe", Reviews: []Review{}}
	data, err = json.Marshal(detail)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"reviews":[]`)
}
