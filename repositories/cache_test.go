package repositories

import (
	"CareLink/cache"
	"CareLink/database"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	database.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c, err := cache.NewCache()
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	return c
}

func mustSet(t *testing.T, c *cache.Cache, key, value string) {
	t.Helper()
	if err := c.Set(context.Background(), key, value, time.Minute); err != nil {
		t.Fatalf("failed to seed %q: %v", key, err)
	}
}

func mustGet(t *testing.T, c *cache.Cache, key string) string {
	t.Helper()
	val, err := c.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("failed to read %q: %v", key, err)
	}
	return val
}

// A patient write must drop the owner's mapping cache too, since cached
// mapping rows embed preloaded patient data.
func TestPatientInvalidateDropsOwnerMappingCache(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	mustSet(t, c, "patients_cache:1", "stale-patients")
	mustSet(t, c, "mappings_cache:1", "stale-mappings")
	mustSet(t, c, "mappings_cache:2", "other-owner")

	r := &patientRepository{cache: c}
	if err := r.invalidate(ctx, 1); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}

	if val := mustGet(t, c, "patients_cache:1"); val != "" {
		t.Errorf("patients_cache:1 still cached: %q", val)
	}
	if val := mustGet(t, c, "mappings_cache:1"); val != "" {
		t.Errorf("mappings_cache:1 still cached: %q", val)
	}
	if val := mustGet(t, c, "mappings_cache:2"); val != "other-owner" {
		t.Errorf("mappings_cache:2 = %q, should be untouched", val)
	}
}

// A doctor write must drop every owner's mapping cache, since any account
// may have cached mappings embedding the doctor.
func TestDoctorInvalidateDropsAllMappingCaches(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	mustSet(t, c, "doctors_cache", "stale-doctors")
	mustSet(t, c, "mappings_cache:1", "stale-mappings-1")
	mustSet(t, c, "mappings_cache:2", "stale-mappings-2")
	mustSet(t, c, "patients_cache:1", "untouched")

	r := &doctorRepository{cache: c}
	if err := r.invalidate(ctx); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}

	for _, key := range []string{"doctors_cache", "mappings_cache:1", "mappings_cache:2"} {
		if val := mustGet(t, c, key); val != "" {
			t.Errorf("%s still cached: %q", key, val)
		}
	}
	if val := mustGet(t, c, "patients_cache:1"); val != "untouched" {
		t.Errorf("patients_cache:1 = %q, should be untouched", val)
	}
}
