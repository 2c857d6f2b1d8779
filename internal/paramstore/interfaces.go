// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package paramstore loads the raw configuration of a service as a flat
// key/value map.
//
// Two sources exist: the AWS SSM parameter store ([NewSSMSource]), used in
// every deployed environment, and a local JSON file ([NewFileSource]), used
// when the environment is "local". [NewSource] picks one of them. Every load
// failure wraps [ErrConfigSourceUnavailable].
package paramstore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/paramstore_mock.go -package=mock

// Source produces the flat configuration map of a service. Keys are dotted
// paths understood by props.FromFlatMap.
type Source interface {
	Load(ctx context.Context) (map[string]any, error)
}

// SSMAPI is the subset of the SSM client used by the parameter store source.
type SSMAPI interface {
	GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
}
