package middleware

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/praneeth-grandhi/Hostel-Management/config"
)

// unknownService is the service name when nothing better is known
const unknownService = "unknown-service"

const serviceAccountNamespaceFile = "/var/run/secrets/kubernetes.io/serviceaccount/namespace"

// serviceIdentity names this process in traces and profiles
type serviceIdentity struct {
	Name        string
	Namespace   string
	Version     string
	Environment string
}

// detectIdentity resolves the service identity. The name comes from
// OTEL_SERVICE_NAME, then SERVICE_NAME, then the pod name. The namespace comes
// from OTEL_RESOURCE_ATTRIBUTES, then POD_NAMESPACE, then the mounted service
// account, then the deployment environment.
func detectIdentity(svc config.ServiceConfig, getenv func(string) string) serviceIdentity {
	id := serviceIdentity{
		Name:        getenv("OTEL_SERVICE_NAME"),
		Version:     svc.Version,
		Environment: svc.Env,
	}

	if id.Name == "" {
		id.Name = svc.Name
	}
	if id.Name == "" {
		podName := getenv("POD_NAME")
		if podName == "" {
			podName, _ = os.Hostname()
		}
		id.Name = serviceFromPodName(podName)
	}

	if ns, ok := resourceAttribute(getenv("OTEL_RESOURCE_ATTRIBUTES"), "service.namespace"); ok {
		id.Namespace = ns
	} else if ns := getenv("POD_NAMESPACE"); ns != "" {
		id.Namespace = ns
	} else if data, err := os.ReadFile(serviceAccountNamespaceFile); err == nil {
		id.Namespace = strings.TrimSpace(string(data))
	}
	if id.Namespace == "" {
		id.Namespace = svc.Env
	}

	return id
}

// serviceFromPodName strips the replicaset and pod hashes from a Kubernetes
// pod name: "hostel-api-75c98b4b9c-kdv2n" is "hostel-api".
func serviceFromPodName(podName string) string {
	if podName == "" {
		return unknownService
	}
	parts := strings.Split(podName, "-")
	if len(parts) >= 3 {
		return strings.Join(parts[:len(parts)-2], "-")
	}
	return parts[0]
}

// resourceAttribute looks key up in an OTEL_RESOURCE_ATTRIBUTES style list
func resourceAttribute(attrs, key string) (string, bool) {
	for _, attr := range strings.Split(attrs, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(attr), "=")
		if ok && k == key && v != "" {
			return v, true
		}
	}
	return "", false
}

// CreateResource builds the OpenTelemetry resource for the tracer provider.
// On partial detection failure it still returns a usable resource together
// with the error.
func CreateResource(ctx context.Context, svc config.ServiceConfig) (*resource.Resource, error) {
	id := detectIdentity(svc, os.Getenv)
	opts := []resource.Option{
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithOS(),
		resource.WithContainer(),
		resource.WithHost(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(id.Name),
			semconv.ServiceNamespaceKey.String(id.Namespace),
			semconv.ServiceVersionKey.String(id.Version),
			semconv.DeploymentEnvironmentKey.String(id.Environment),
		),
	}

	res, err := resource.New(ctx, opts...)
	if err != nil {
		return resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(id.Name),
			semconv.ServiceNamespaceKey.String(id.Namespace),
		), fmt.Errorf("resource detection partial failure (using fallback): %w", err)
	}
	return res, nil
}

// GetServiceName extracts the service name from a resource
func GetServiceName(res *resource.Resource) string {
	if res == nil {
		return unknownService
	}
	for _, attr := range res.Attributes() {
		if attr.Key == semconv.ServiceNameKey {
			return attr.Value.AsString()
		}
	}
	return unknownService
}
