package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Level  string `yaml:"log_level" validate:"loglevel"`
	Hex    string `json:"hex" validate:"omitempty,hexcolor6"`
	Number string `json:"number" validate:"phone"`
	Title  string `json:"title" validate:"required,max=5"`
}

func TestValidStruct(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(sample{Level: "debug", Hex: "#A1b2C3", Number: "+66 (086) 327-6130", Title: "ok"}))
}

func TestFieldErrorsUseTagNames(t *testing.T) {
	v := New()
	err := v.Struct(sample{Level: "LOUD", Hex: "#FFF", Number: "call me", Title: ""})
	require.Error(t, err)

	var errs Errors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 4)

	fields := map[string]string{}
	for _, fe := range errs {
		fields[fe.Field] = fe.Tag
	}
	assert.Equal(t, map[string]string{
		"log_level": "loglevel",
		"hex":       "hexcolor6",
		"number":    "phone",
		"title":     "required",
	}, fields)
	assert.Contains(t, err.Error(), "title is required")
}

func TestMaxMessage(t *testing.T) {
	err := New().Struct(sample{Level: "INFO", Title: "too long"})
	require.Error(t, err)
	assert.Equal(t, "title must be at most 5 characters", err.Error())
}
