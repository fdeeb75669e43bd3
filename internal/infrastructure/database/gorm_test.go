package database

import "testing"

func TestConnectGormSQLite(t *testing.T) {
	db, err := ConnectGorm("file:connect_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("ConnectGorm returned error: %v", err)
	}
	if db.Dialector.Name() != "sqlite" {
		t.Fatalf("expected sqlite dialector, got %s", db.Dialector.Name())
	}
}

func TestNewDynamoDBConfigFromEnv(t *testing.T) {
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	cfg, err := NewDynamoDBConfigFromEnv(t.Context())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("expected sa-east-1, got %s", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(t.Context())
	if err != nil {
		t.Fatalf("unexpected credentials error: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("expected local access key, got %s", creds.AccessKeyID)
	}
}
