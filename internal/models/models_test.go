package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntityName(t *testing.T) {
	for _, e := range Entities() {
		got, err := ParseEntityName(string(e))
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}

	_, err := ParseEntityName("Movie")
	assert.Error(t, err)
	_, err = ParseEntityName("project")
	assert.Error(t, err, "entity tags are case sensitive")
}

func TestParseFieldName(t *testing.T) {
	tests := []struct {
		entity  EntityName
		field   string
		wantErr bool
	}{
		{EntityProject, "Title", false},
		{EntityProject, "MetaKeywords", false},
		{EntityProject, "AltText", true},
		{EntityCategory, "Description", false},
		{EntityCategory, "Location", true},
		{EntityPhoto, "SliderText", false},
		{EntityPhoto, "Title", true},
		{EntityName("Unknown"), "Title", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.entity)+"/"+tt.field, func(t *testing.T) {
			got, err := ParseFieldName(tt.entity, tt.field)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, FieldName(tt.field), got)
		})
	}
}

func TestFieldsReturnsCopy(t *testing.T) {
	fields := EntityCategory.Fields()
	fields[0] = FieldSliderText
	assert.Equal(t, FieldTitle, EntityCategory.Fields()[0])
}

func TestEnforceSliderRule(t *testing.T) {
	p := &Photo{Status: StatusHidden, IsHomepageSlider: true, SliderText: "hello"}
	p.EnforceSliderRule()
	assert.False(t, p.IsHomepageSlider)
	assert.Empty(t, p.SliderText)

	p = &Photo{Status: StatusPublished, IsHomepageSlider: true, SliderText: "hello"}
	p.EnforceSliderRule()
	assert.True(t, p.IsHomepageSlider)
	assert.Equal(t, "hello", p.SliderText)
}

func TestDeletionResultFailClearsDeletedItems(t *testing.T) {
	r := NewDeletionResult()
	r.DeletedItems = append(r.DeletedItems, "Photo file: a.jpg")
	r.Fail("Failed to delete project: boom")

	assert.Equal(t, DeletionFailed, r.Status)
	assert.False(t, r.Success)
	assert.Empty(t, r.DeletedItems)
}
