package utils

import (
	"testing"

	"tripnest/config"
)

func TestAuthCacheDegradesWithoutRedis(t *testing.T) {
	// Point at a port nothing listens on; token caching must fail with an
	// error instead of taking the process down.
	config.AppConfig.RedisAddr = "127.0.0.1:1"
	AuthCacheClient = nil

	if GetAuthCacheClient() == nil {
		t.Fatal("expected a client even when redis is unreachable")
	}
	if err := CacheAuthToken("user-1", "hash"); err == nil {
		t.Error("expected an error caching without a reachable redis")
	}
	if err := RevokeAuthToken("user-1"); err == nil {
		t.Error("expected an error revoking without a reachable redis")
	}
}
