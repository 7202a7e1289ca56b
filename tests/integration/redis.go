//go:build integration

package integration

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	redisContainer   testcontainers.Container
	redisContainerMu sync.Mutex
	redisAddr        string
)

// NewRedisClient returns a client to the shared Redis container with an
// empty database
func NewRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	redisContainerMu.Lock()
	defer redisContainerMu.Unlock()

	ctx := context.Background()

	if redisContainer == nil {
		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor: wait.ForLog("Ready to accept connections").
					WithStartupTimeout(30 * time.Second),
			},
			Started: true,
		})
		require.NoError(t, err, "Failed to start Redis container")

		host, err := container.Host(ctx)
		require.NoError(t, err)
		port, err := container.MappedPort(ctx, "6379/tcp")
		require.NoError(t, err)

		redisContainer = container
		redisAddr = fmt.Sprintf("%s:%d", host, port.Int())
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	require.NoError(t, client.FlushDB(ctx).Err())
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

// CleanupRedisContainer terminates the shared Redis container
func CleanupRedisContainer() {
	redisContainerMu.Lock()
	defer redisContainerMu.Unlock()

	if redisContainer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = redisContainer.Terminate(ctx)
		redisContainer = nil
		redisAddr = ""
	}
}
