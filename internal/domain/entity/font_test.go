package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
		wantErr  bool
	}{
		{"Khmer", CategoryKhmer, false},
		{"khmer", CategoryKhmer, false},
		{"ENGLISH", CategoryEnglish, false},
		{" english ", CategoryEnglish, false},
		{"latin", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFontRecord_Validate(t *testing.T) {
	valid := FontRecord{
		ID:         "battambang",
		Name:       "Battambang",
		Category:   CategoryKhmer,
		FileName:   "Battambang-Regular.ttf",
		FontFamily: "Battambang",
		AssetURL:   "https://example.com/Battambang-Regular.ttf",
	}
	assert.NoError(t, valid.Validate())

	noID := valid
	noID.ID = ""
	assert.Error(t, noID.Validate())

	badCategory := valid
	badCategory.Category = "Latin"
	assert.Error(t, badCategory.Validate())

	noURL := valid
	noURL.AssetURL = ""
	assert.Error(t, noURL.Validate())
}
