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
	"path"
	"strings"

	"google.golang.org/grpc/peer"
)

// splitMethodName parses a gRPC full method name ("/package.Service/Method")
// into its service and method components, tolerating a missing leading
// slash or a missing service part.
func splitMethodName(fullMethod string) (service, method string) {
	fullMethod = strings.TrimPrefix(fullMethod, "/")
	service = path.Dir(fullMethod)
	method = path.Base(fullMethod)
	if service == "." || service == "" {
		service = "unknown"
	}
	return service, method
}

// peerAddress returns the remote endpoint address from ctx, or "unknown"
// when no peer information is attached.
func peerAddress(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return "unknown"
}
