//go:build integration
// +build integration

package classdata_test

import (
	"testing"

	"github.com/KirkDiggler/nexus-classes/internal/repositories/classdata"
	"github.com/KirkDiggler/nexus-classes/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	// This test requires Redis to be running, or NEXUS_TEST_REDIS_CONTAINER set
	client := testutils.CreateTestRedisClientOrSkip(t)

	runRepositoryContract(t, classdata.NewRedis(client))
}
