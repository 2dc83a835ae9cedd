package containers

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/nats"
	"github.com/testcontainers/testcontainers-go/wait"
)

const natsImage = "nats:2.10-alpine"

// SetupNatsContainer starts a core NATS server for event bus tests and
// returns it with its client URL.
func SetupNatsContainer(ctx context.Context) (*nats.NATSContainer, string, error) {
	ready := wait.ForAll(
		wait.ForLog("Server is ready"),
		wait.ForListeningPort("4222/tcp"),
	).WithDeadline(45 * time.Second)

	container, err := nats.Run(ctx, natsImage, testcontainers.WithWaitStrategy(ready))
	if err != nil {
		return nil, "", fmt.Errorf("start nats container: %w", err)
	}

	url, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, "", fmt.Errorf("nats connection string: %w", err)
	}
	return container, url, nil
}
