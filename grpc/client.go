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

// UnaryClientInterceptor returns an interceptor that logs one completion
// line per outgoing unary call: method, target, status code, and duration.
// Client calls are not wrapped in sections: an outgoing RPC is a point
// event from the caller's perspective, not a nested scope of its own output.
func UnaryClientInterceptor(log *sectlog.Logger, opts ...Option) grpc.UnaryClientInterceptor {
	o := resolveOptions(opts)
	return func(ctx context.Context, fullMethod string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, callOpts ...grpc.CallOption) error {
		service, method := splitMethodName(fullMethod)
		start := time.Now()

		err := invoker(ctx, fullMethod, req, reply, cc, callOpts...)

		level := o.level
		if err != nil {
			level = o.errorLevel
		}
		log.LogContext(ctx, level, "call %s/%s target=%s code=%s duration=%s",
			service, method, cc.CanonicalTarget(), status.Code(err), time.Since(start))
		return err
	}
}
