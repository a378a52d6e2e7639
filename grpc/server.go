// Copyright 2026 The sectlog Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	sectlog "github.com/sectlog/sectlog"
)

// UnaryServerInterceptor returns an interceptor that brackets each unary
// call in a section on log and emits a completion line with the call's
// status code, peer, and duration. The handler's own logging lands inside
// the section and is indented accordingly.
func UnaryServerInterceptor(log *sectlog.Logger, opts ...Option) grpc.UnaryServerInterceptor {
	o := resolveOptions(opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		service, method := splitMethodName(info.FullMethod)

		var sec *sectlog.Section
		if o.sections {
			sec = log.SectionAt(o.level, "rpc %s/%s", service, method)
		}
		start := time.Now()

		resp, err := handler(ctx, req)

		logCompletion(ctx, log, o, service, method, peerAddress(ctx), time.Since(start), err)
		if sec != nil {
			sec.Close()
		}
		return resp, err
	}
}

// StreamServerInterceptor is the stream counterpart of
// [UnaryServerInterceptor]; the duration covers the whole stream lifetime.
func StreamServerInterceptor(log *sectlog.Logger, opts ...Option) grpc.StreamServerInterceptor {
	o := resolveOptions(opts)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx := ss.Context()
		service, method := splitMethodName(info.FullMethod)

		var sec *sectlog.Section
		if o.sections {
			sec = log.SectionAt(o.level, "rpc stream %s/%s", service, method)
		}
		start := time.Now()

		err := handler(srv, ss)

		logCompletion(ctx, log, o, service, method, peerAddress(ctx), time.Since(start), err)
		if sec != nil {
			sec.Close()
		}
		return err
	}
}

// logCompletion writes the single end-of-call record. Failed calls use the
// configured error severity; the status code renders even for nil errors
// (code OK).
func logCompletion(ctx context.Context, log *sectlog.Logger, o options, service, method, peer string, d time.Duration, err error) {
	level := o.level
	if err != nil {
		level = o.errorLevel
	}
	log.LogContext(ctx, level, "%s/%s code=%s peer=%s duration=%s",
		service, method, status.Code(err), peer, d)
}
