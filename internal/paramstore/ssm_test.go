// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paramstore

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/alto-starter/internal/logger"
	"github.com/MKhiriev/alto-starter/internal/mock"
)

func param(name, value string) types.Parameter {
	return types.Parameter{Name: aws.String(name), Value: aws.String(value)}
}

func TestParameterPath(t *testing.T) {
	assert.Equal(t, "/alto/search_dev", ParameterPath("search", "dev"))
}

func TestSSMSource_Load_PaginatesAndStripsPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockSSMAPI(ctrl)
	src := NewSSMSource(client, "search", "dev", logger.Nop())

	gomock.InOrder(
		client.EXPECT().GetParametersByPath(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
				assert.Equal(t, "/alto/search_dev", aws.ToString(in.Path))
				assert.True(t, aws.ToBool(in.Recursive))
				assert.True(t, aws.ToBool(in.WithDecryption))
				assert.Nil(t, in.NextToken)
				return &ssm.GetParametersByPathOutput{
					Parameters: []types.Parameter{
						param("/alto/search_dev/sys/registry/url", "http://registry"),
						param("/alto/search_dev/feature.enabled", "true"),
					},
					NextToken: aws.String("page-2"),
				}, nil
			},
		),
		client.EXPECT().GetParametersByPath(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
				assert.Equal(t, "page-2", aws.ToString(in.NextToken))
				return &ssm.GetParametersByPathOutput{
					Parameters: []types.Parameter{
						param("/alto/search_dev/sys/identityProvider/clientSecret", "s3cr3t"),
					},
				}, nil
			},
		),
	)

	got, err := src.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"sys.registry.url":                  "http://registry",
		"feature.enabled":                   "true",
		"sys.identityProvider.clientSecret": "s3cr3t",
	}, got)
}

func TestSSMSource_Load_EmptyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockSSMAPI(ctrl)
	client.EXPECT().
		GetParametersByPath(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ssm.GetParametersByPathOutput{}, nil)

	got, err := NewSSMSource(client, "search", "dev", logger.Nop()).Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSSMSource_Load_SkipsTheRootParameter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockSSMAPI(ctrl)
	client.EXPECT().
		GetParametersByPath(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ssm.GetParametersByPathOutput{
			Parameters: []types.Parameter{
				param("/alto/search_dev", "ignored"),
				param("/alto/search_dev/", "ignored"),
				param("/alto/search_dev/name", "search"),
			},
		}, nil)

	got, err := NewSSMSource(client, "search", "dev", logger.Nop()).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "search"}, got)
}

func TestSSMSource_Load_ClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiErr := errors.New("AccessDeniedException")
	client := mock.NewMockSSMAPI(ctrl)
	client.EXPECT().
		GetParametersByPath(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apiErr)

	_, err := NewSSMSource(client, "search", "dev", logger.Nop()).Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigSourceUnavailable)
	assert.ErrorIs(t, err, apiErr)
}
