package runstore

import (
	"testing"

	"github.com/huangsam/rollcast/schema"
	"github.com/stretchr/testify/assert"
)

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		wantErr bool
	}{
		{"valid name", "rollcast_forecast_runs", false},
		{"valid with leading underscore", "_runs", false},
		{"empty", "", true},
		{"spaces", "forecast runs", true},
		{"injection attempt", "runs; DROP TABLE users", true},
		{"leading digit", "1runs", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.table)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.SQLiteBackend))
	assert.Equal(t, "`runs`", quoteTableName("runs", schema.MySQLBackend))
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.PostgreSQLBackend))
}
