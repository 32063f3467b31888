package kubernetes

import (
	"context"
	"fmt"

	"github.com/weaversoft/snapwatch/config"
	"github.com/weaversoft/snapwatch/domain"
	"github.com/weaversoft/snapwatch/pkg/logger"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

const (
	defaultQPS   = 20
	defaultBurst = 50
)

// NewEventSourceFactory returns a factory that builds one EventSource per
// watcher. A watcher with an explicit ClusterConnection gets a client built
// from its own kubeconfig; an empty connection falls back to the process
// default (in-cluster config or the configured kubeconfig path).
func NewEventSourceFactory(cfg config.KubernetesConfig) domain.EventSourceFactory {
	return func(ctx context.Context, conn domain.ClusterConnection) (domain.EventSource, error) {
		restCfg, err := buildRestConfig(ctx, cfg, conn)
		if err != nil {
			return nil, err
		}

		// Watches are long-lived, so rate limits are tuned but no global
		// client timeout is set. A client timeout would sever every watch
		// after it elapses.
		restCfg.QPS = defaultQPS
		restCfg.Burst = defaultBurst

		client, err := kubernetes.NewForConfig(restCfg)
		if err != nil {
			return nil, domain.NewConfigurationError("failed to create kubernetes client", err)
		}
		return NewEventSourceFromClient(client), nil
	}
}

func buildRestConfig(ctx context.Context, cfg config.KubernetesConfig, conn domain.ClusterConnection) (*rest.Config, error) {
	switch {
	case conn.CredentialsRef != "":
		logger.Logger(ctx).Debug().Str("kubeconfig", conn.CredentialsRef).Msg("using watcher kubeconfig")
		restCfg, err := clientcmd.BuildConfigFromFlags(conn.APIEndpoint, conn.CredentialsRef)
		if err != nil {
			return nil, domain.NewConfigurationError(fmt.Sprintf("failed to build kubeconfig from %s", conn.CredentialsRef), err)
		}
		return restCfg, nil
	case cfg.InCluster:
		logger.Logger(ctx).Debug().Msg("using in-cluster kubernetes configuration")
		restCfg, err := rest.InClusterConfig()
		if err != nil {
			return nil, domain.NewConfigurationError("failed to create in-cluster config", err)
		}
		return restCfg, nil
	case cfg.KubeConfigPath != "":
		logger.Logger(ctx).Debug().Str("kubeconfig", cfg.KubeConfigPath).Msg("using default kubeconfig")
		restCfg, err := clientcmd.BuildConfigFromFlags(conn.APIEndpoint, cfg.KubeConfigPath)
		if err != nil {
			return nil, domain.NewConfigurationError(fmt.Sprintf("failed to build kubeconfig from %s", cfg.KubeConfigPath), err)
		}
		return restCfg, nil
	default:
		return nil, domain.NewConfigurationError("no cluster connection available", domain.ErrNoKubeConfig)
	}
}

// NewEventSourceFromClient wraps an existing client. Tests hand in a fake
// clientset through here.
func NewEventSourceFromClient(client kubernetes.Interface) domain.EventSource {
	return &k8sEventSource{client: client}
}

type k8sEventSource struct {
	client kubernetes.Interface
}

func (s *k8sEventSource) Subscribe(ctx context.Context, opt domain.SubscribeOptions) (domain.EventStream, error) {
	namespace := opt.Namespace
	if namespace == "" {
		namespace = metav1.NamespaceAll
	} else {
		// Watching a namespace that does not exist silently yields nothing,
		// so check it up front and fail loud instead.
		if _, err := s.client.CoreV1().Namespaces().Get(ctx, namespace, metav1.GetOptions{}); err != nil {
			if apierrors.IsNotFound(err) {
				return nil, domain.NewConfigurationError(fmt.Sprintf("namespace %s not found", namespace), err)
			}
			return nil, classifyError("failed to check namespace", err)
		}
	}

	w, err := s.client.CoreV1().Pods(namespace).Watch(ctx, metav1.ListOptions{
		LabelSelector: opt.LabelSelector,
	})
	if err != nil {
		return nil, classifyError("failed to open pod watch", err)
	}
	return newPodEventStream(w), nil
}

func (s *k8sEventSource) GetReplicaSetOwners(ctx context.Context, namespace, name string) ([]domain.OwnerReference, error) {
	rs, err := s.client.AppsV1().ReplicaSets(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, classifyError("failed to get replicaset", err)
	}

	owners := make([]domain.OwnerReference, 0, len(rs.OwnerReferences))
	for _, ref := range rs.OwnerReferences {
		owners = append(owners, domain.OwnerReference{
			Kind: domain.OwnerKind(ref.Kind),
			Name: ref.Name,
			UID:  string(ref.UID),
		})
	}
	return owners, nil
}

func (s *k8sEventSource) GetDeployment(ctx context.Context, namespace, name string) (bool, error) {
	_, err := s.client.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return false, nil
		}
		return false, classifyError("failed to get deployment", err)
	}
	return true, nil
}

func (s *k8sEventSource) DeletePod(ctx context.Context, namespace, name string) error {
	err := s.client.CoreV1().Pods(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	if err != nil && !apierrors.IsNotFound(err) {
		return classifyError("failed to delete pod", err)
	}
	return nil
}

func (s *k8sEventSource) Ping(ctx context.Context) error {
	if _, err := s.client.Discovery().ServerVersion(); err != nil {
		return classifyError("failed to reach api server", err)
	}
	return nil
}

// classifyError sorts API failures into the two buckets the watch loop cares
// about. Auth and validation failures will not heal on retry; everything
// else is assumed transient.
func classifyError(reason string, err error) error {
	switch {
	case apierrors.IsUnauthorized(err),
		apierrors.IsForbidden(err),
		apierrors.IsInvalid(err),
		apierrors.IsBadRequest(err),
		apierrors.IsMethodNotSupported(err):
		return domain.NewConfigurationError(reason, err)
	default:
		return domain.NewConnectivityError(reason, err)
	}
}
