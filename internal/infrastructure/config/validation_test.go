package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_NormalizesBadNumbers(t *testing.T) {
	c := &Config{}
	assert.NoError(t, validate(c))
	assert.Equal(t, DefaultPageSize, c.Browse.PageSize)
	assert.Equal(t, DefaultSuggestionLimit, c.Browse.SuggestionLimit)
}

func TestValidate_RejectsUnknownLogFormat(t *testing.T) {
	c := Default()
	c.Logging.Format = "xml"
	assert.Error(t, validate(c))

	c.Logging.Format = "json"
	assert.NoError(t, validate(c))
}
