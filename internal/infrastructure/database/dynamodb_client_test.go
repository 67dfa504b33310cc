package database

import (
	"context"
	"testing"

	"tiffin_tales/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfig(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	cfg, err := NewDynamoDBConfig(context.Background(), config.DynamoDB{
		Region:   "ca-central-1",
		Endpoint: "http://localhost:8000",
	})
	require.NoError(t, err)
	assert.Equal(t, "ca-central-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
	assert.Equal(t, "local", creds.SecretAccessKey)
}

func TestNewDynamoDBConfig_RegionFromEnv(t *testing.T) {
	t.Setenv("AWS_REGION", "sa-east-1")

	cfg, err := NewDynamoDBConfig(context.Background(), config.DynamoDB{})
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)
}
