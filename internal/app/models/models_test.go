package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    Integer
		wantErr bool
	}{
		{in: `28`, want: 28},
		{in: `"28"`, want: 28},
		{in: `" 7 "`, want: 7},
		{in: `-1`, want: -1},
		{in: `"abc"`, wantErr: true},
		{in: `2.5`, wantErr: true},
		{in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got Integer
			err := json.Unmarshal([]byte(tt.in), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStudentAttributesFromJSON(t *testing.T) {
	var attrs StudentAttributes
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Emma","age":"28","dept_id":3}`), &attrs))

	require.NotNil(t, attrs.Age)
	assert.Equal(t, Integer(28), *attrs.Age)
	assert.Equal(t, Integer(3), *attrs.DeptID)
	assert.Nil(t, attrs.Country)
}

func TestStudentJSONShape(t *testing.T) {
	country := "Canada"
	b, err := json.Marshal(Student{ID: 1, Name: "Emma", Age: 28, Country: &country, DeptID: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Emma","age":28,"country":"Canada","dept_id":2}`, string(b))

	b, err = json.Marshal(Department{ID: 2, Title: "Physics", Students: []Student{{ID: 1}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"title":"Physics"}`, string(b))
}
