package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestGetInt_StringNumerico_Parsea(t *testing.T) {
	v := viper.New()
	v.Set("BULK_MAX_ITEMS", "25")

	assert.Equal(t, 25, getInt(v, "BULK_MAX_ITEMS", 50))
}

func TestGetInt_StringNoNumerico_UsaDefault(t *testing.T) {
	v := viper.New()
	v.Set("BULK_MAX_ITEMS", "abc")

	assert.Equal(t, 50, getInt(v, "BULK_MAX_ITEMS", 50),
		"un valor ilegible no debe convertirse en 0")
}

func TestGetInt_SinClave_UsaDefault(t *testing.T) {
	v := viper.New()

	assert.Equal(t, 5, getInt(v, "DB_QUERY_TIMEOUT_SECONDS", 5))
}

func TestGetString_SinClave_UsaDefault(t *testing.T) {
	v := viper.New()

	assert.Equal(t, "development", getString(v, "APP_ENV", "development"))
}
