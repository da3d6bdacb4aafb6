package testing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	defaultESImage     = "docker.elastic.co/elasticsearch/elasticsearch:8.19.0"
	esStartupTimeout   = 90 * time.Second
	esSingleNodeMemory = "-Xms512m -Xmx512m"
)

// ESContainer is a single-node Elasticsearch cluster with security disabled.
type ESContainer struct {
	Container testcontainers.Container
	Address   string
}

type ESContainerOpt func(*esContainerOpts)

type esContainerOpts struct {
	image string
}

// WithESImage overrides the Elasticsearch image, e.g. to test against another minor version.
func WithESImage(image string) ESContainerOpt {
	return func(o *esContainerOpts) {
		o.image = image
	}
}

// NewESContainer starts an Elasticsearch container and terminates it when tb finishes.
func NewESContainer(ctx context.Context, tb testing.TB, opts ...ESContainerOpt) *ESContainer {
	tb.Helper()

	o := esContainerOpts{image: defaultESImage}
	for _, opt := range opts {
		opt(&o)
	}

	esContainer, err := elasticsearch.Run(ctx,
		o.image,
		elasticsearch.WithPassword(""),
		testcontainers.WithEnv(map[string]string{
			"xpack.security.enabled": "false",
			"ES_JAVA_OPTS":           esSingleNodeMemory,
		}),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/_cluster/health?wait_for_status=yellow").
				WithPort("9200").
				WithStartupTimeout(esStartupTimeout),
		),
	)
	if err != nil {
		tb.Fatalf("failed to start elasticsearch container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(esContainer); err != nil {
			tb.Logf("failed to terminate elasticsearch container: %v", err)
		}
	})

	host, err := esContainer.Host(ctx)
	if err != nil {
		tb.Fatalf("failed to get elasticsearch host: %v", err)
	}

	port, err := esContainer.MappedPort(ctx, "9200")
	if err != nil {
		tb.Fatalf("failed to get elasticsearch port: %v", err)
	}

	return &ESContainer{
		Container: esContainer,
		Address:   fmt.Sprintf("http://%s:%s", host, port.Port()),
	}
}
