package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaDeclareAndGet(t *testing.T) {
	s := NewSchema()
	s.Declare("p", 0, 5, Joint)
	s.Declare("r", 1, 3, Independent)

	p, ok := s.Get("p")
	require.True(t, ok)
	assert.Equal(t, 0, p.Min())
	assert.Equal(t, 5, p.Max())

	assert.Equal(t, []string{"p", "r"}, s.Names())
	assert.Len(t, s.Joints(), 1)
	assert.Len(t, s.Independents(), 1)
}

func TestSchemaDeclareDuplicatePanics(t *testing.T) {
	s := NewSchema()
	s.Declare("p", 0, 5, Joint)
	assert.Panics(t, func() { s.Declare("p", 0, 1, Joint) })
}

func TestSchemaSetRangeEmptyFails(t *testing.T) {
	s := NewSchema()
	s.Declare("p", 0, 5, Joint)
	err := s.SetRange("p", 5, 3)
	require.Error(t, err)
	p, _ := s.Get("p")
	// The rejected narrowing must not have taken effect (invariant 1:
	// min <= max always holds).
	assert.Equal(t, 0, p.Min())
	assert.Equal(t, 5, p.Max())
}

func TestSchemaSetValueFreezes(t *testing.T) {
	s := NewSchema()
	s.Declare("p", 0, 5, Joint)
	require.NoError(t, s.SetValue("p", 3))
	p, _ := s.Get("p")
	assert.True(t, p.IsFixed())
	assert.Equal(t, 3, p.Min())
	assert.Equal(t, 3, p.Max())

	s.Reset()
	assert.False(t, p.IsFixed())
	assert.Equal(t, 0, p.Min())
	assert.Equal(t, 5, p.Max())
}

func TestSchemaSetValueOutOfDeclaredRangeFails(t *testing.T) {
	s := NewSchema()
	s.Declare("p", 0, 5, Joint)
	err := s.SetValue("p", 9)
	assert.Error(t, err)
}

func TestSchemaUnknownNameFails(t *testing.T) {
	s := NewSchema()
	assert.Error(t, s.SetRange("missing", 0, 1))
	assert.Error(t, s.SetValue("missing", 0))
}

func TestEnumerateJointCartesianProduct(t *testing.T) {
	s := NewSchema()
	s.Declare("a", 0, 1, Joint)
	s.Declare("b", 0, 2, Joint)

	var got []Assignment
	for a := range s.EnumerateJoint() {
		got = append(got, a)
	}
	assert.Len(t, got, 6) // 2 * 3

	// Row-major: b varies fastest (last declared).
	assert.Equal(t, Assignment{"a": 0, "b": 0}, got[0])
	assert.Equal(t, Assignment{"a": 0, "b": 1}, got[1])
	assert.Equal(t, Assignment{"a": 0, "b": 2}, got[2])
	assert.Equal(t, Assignment{"a": 1, "b": 0}, got[3])
}

func TestEnumerateJointNoJointParametersYieldsOneEmptyAssignment(t *testing.T) {
	s := NewSchema()
	s.Declare("r", 1, 3, Independent)

	var got []Assignment
	for a := range s.EnumerateJoint() {
		got = append(got, a)
	}
	require.Len(t, got, 1)
	assert.Empty(t, got[0])
}

func TestAssignmentClone(t *testing.T) {
	a := Assignment{"x": 1}
	b := a.Clone()
	b["x"] = 2
	assert.Equal(t, 1, a["x"])
	assert.Equal(t, 2, b["x"])
}
