// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paramstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/MKhiriev/alto-starter/internal/logger"
)

const pathPrefix = "/alto/"

type ssmSource struct {
	client SSMAPI
	path   string
	logger *logger.Logger
}

// NewSSMClient builds an SSM client from the default AWS credential chain
// for the given region.
func NewSSMClient(ctx context.Context, region string) (*ssm.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("%w: load aws config: %w", ErrConfigSourceUnavailable, err)
	}
	return ssm.NewFromConfig(cfg), nil
}

// ParameterPath returns the parameter store path of a service deployment:
// /alto/{service}_{deployment}.
func ParameterPath(service, deployment string) string {
	return pathPrefix + service + "_" + deployment
}

// NewSSMSource returns a [Source] reading every parameter under
// [ParameterPath] recursively, with SecureString values decrypted.
//
// Parameter names are stripped of the path and its trailing slash; deeper
// levels are joined with "." so /alto/search_dev/sys/registry/url becomes
// sys.registry.url.
func NewSSMSource(client SSMAPI, service, deployment string, logger *logger.Logger) Source {
	return &ssmSource{
		client: client,
		path:   ParameterPath(service, deployment),
		logger: logger,
	}
}

func (s *ssmSource) Load(ctx context.Context) (map[string]any, error) {
	input := &ssm.GetParametersByPathInput{
		Path:           aws.String(s.path),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	}

	values := make(map[string]any)
	paginator := ssm.NewGetParametersByPathPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: get parameters by path %s: %w", ErrConfigSourceUnavailable, s.path, err)
		}

		for _, p := range page.Parameters {
			key := s.key(aws.ToString(p.Name))
			if key == "" {
				continue
			}
			values[key] = aws.ToString(p.Value)
		}
	}

	s.logger.Debug().
		Str("path", s.path).
		Int("parameters", len(values)).
		Msg("loaded parameters from ssm")

	return values, nil
}

func (s *ssmSource) key(name string) string {
	if name == s.path {
		return ""
	}
	name = strings.TrimPrefix(name, s.path+"/")
	name = strings.Trim(name, "/")
	return strings.ReplaceAll(name, "/", ".")
}
