package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBareID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "record pointer", in: "certification:abc123", want: "abc123"},
		{name: "already bare", in: "abc123", want: "abc123"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bareID(tt.in))
		})
	}
}

func TestDecodeRecordNormalizesID(t *testing.T) {
	raw := map[string]any{
		"id":           "hackathon:j4x9",
		"name":         "HackZurich",
		"role":         "Backend",
		"organizer":    "ETH",
		"side":         "right",
		"delay":        float64(200),
		"displayOrder": float64(3),
	}

	hack, err := decodeRecord[Hackathon](raw)
	require.NoError(t, err)
	assert.Equal(t, "j4x9", hack.ID)
	assert.Equal(t, "HackZurich", hack.Name)
	assert.Equal(t, "right", hack.Side)
	assert.Equal(t, 200, hack.Delay)
	assert.Equal(t, 3, hack.DisplayOrder)
}

func TestDecodeRecordBadShape(t *testing.T) {
	_, err := decodeRecord[Hackathon]("not a map")
	assert.Error(t, err)
}

func TestQueryResult(t *testing.T) {
	raw := []any{
		map[string]any{
			"status": "OK",
			"result": []any{
				map[string]any{"id": "project:1"},
				map[string]any{"id": "project:2"},
			},
		},
	}

	records, err := queryResult(raw)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestQueryResultEmpty(t *testing.T) {
	raw := []any{
		map[string]any{"status": "OK", "result": nil},
	}

	records, err := queryResult(raw)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCertificationPatchOnlySuppliedFields(t *testing.T) {
	patch := certificationPatch(CertificationParams{
		Title:        strPtr("New title"),
		DisplayOrder: intPtr(5),
	})

	assert.Equal(t, map[string]any{
		"title":        "New title",
		"displayOrder": 5,
	}, patch)
}

func TestProjectPatchKeepsNilTechnologies(t *testing.T) {
	patch := projectPatch(ProjectParams{Title: strPtr("x")})
	_, ok := patch["technologies"]
	assert.False(t, ok)

	patch = projectPatch(ProjectParams{Technologies: []Technology{{Name: "Go", Color: "cyan"}}})
	assert.Contains(t, patch, "technologies")
}
