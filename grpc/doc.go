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

// Package grpc provides interceptors that log RPC activity through a
// [github.com/sectlog/sectlog.Logger].
//
// The server interceptors wrap each call in a section, so everything the
// handler itself logs is indented under the RPC's framing lines, and emit a
// completion line with the method, status code, peer address, and duration:
//
//	[info] === start rpc users.UserService/GetUser === {
//	[info] | looked up user u123
//	[info] | users.UserService/GetUser code=OK peer=127.0.0.1:59004 duration=1.2ms
//	[info] ===   end rpc users.UserService/GetUser === }
//
// Completion lines go through the logger's context-aware path, so an
// OpenTelemetry span context on the RPC context adds trace correlation
// automatically. Failed calls log at the error severity regardless of the
// configured level.
//
// Typical wiring:
//
//	srv := grpc.NewServer(
//	    grpc.ChainUnaryInterceptor(sectloggrpc.UnaryServerInterceptor(log)),
//	    grpc.ChainStreamInterceptor(sectloggrpc.StreamServerInterceptor(log)),
//	)
package grpc
