package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalCatalog = `{
  "exercises": [
    {
      "id": 1,
      "number": "1",
      "questions": [
        {
          "id": 10,
          "variant": "A",
          "description": "List something.",
          "result": {"columns": ["name", "count"], "values": [["x", 3], ["y", 4.5]]}
        }
      ]
    }
  ]
}`

func TestParse_Minimal(t *testing.T) {
	ix, err := Parse([]byte(minimalCatalog))
	require.NoError(t, err)

	rq, err := ix.Resolve(1, "A")
	require.NoError(t, err)
	assert.Equal(t, 10, rq.ID)
	assert.Equal(t, []string{"name", "count"}, rq.EvaluableResult.Columns)

	row := rq.EvaluableResult.Data[0]
	assert.Equal(t, "x", row[0].Text)
	assert.True(t, row[1].Numeric)
	assert.Equal(t, float64(3), row[1].Number)
}

func TestParse_RejectsInvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestParse_RejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing exercises", `{}`},
		{"question without variant", `{"exercises":[{"id":1,"number":"1","questions":[{"id":10,"description":"d","result":{"columns":[],"values":[]}}]}]}`},
		{"empty variant", `{"exercises":[{"id":1,"number":"1","questions":[{"id":10,"variant":"","description":"d","result":{"columns":[],"values":[]}}]}]}`},
		{"boolean cell", `{"exercises":[{"id":1,"number":"1","questions":[{"id":10,"variant":"A","description":"d","result":{"columns":["ok"],"values":[[true]]}}]}]}`},
		{"exercise without questions", `{"exercises":[{"id":1,"number":"1","questions":[]}]}`},
		{"string exercise id", `{"exercises":[{"id":"1","number":"1","questions":[{"id":10,"variant":"A","description":"d","result":{"columns":[],"values":[]}}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestParse_RejectsStructuralViolations(t *testing.T) {
	// Passes the schema but breaks the uniqueness invariant.
	doc := `{"exercises":[
      {"id":1,"number":"1","questions":[{"id":10,"variant":"A","description":"d","result":{"columns":[],"values":[]}}]},
      {"id":2,"number":"2","questions":[{"id":10,"variant":"A","description":"d","result":{"columns":[],"values":[]}}]}
    ]}`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate question id")
}

func TestDefault_EmbeddedCatalog(t *testing.T) {
	ix, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, ix.Exercises())

	// Every exercise must expose at least one variant.
	for _, ex := range ix.Exercises() {
		assert.NotEmpty(t, ex.VariantLabels(), "exercise %d", ex.ID)
	}
}
