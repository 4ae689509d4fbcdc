// Copyright 2016 The Govisor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use file except in compliance with the License.
// You may obtain a copy of the license at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package simplecounter provides a trivial child process fixture for
// exercising process management code.  The fixture prints a counter line
// to standard output once per second for twenty iterations, then a
// completion line, then exits.  A supervising parent can watch the stream
// to verify liveness, or kill the process mid-run to verify its own
// shutdown handling.
//
// The fixture is deliberately inert: it takes no arguments, reads no
// environment, and handles no signals.  Whatever a supervisor does to it
// is supposed to happen to it.
//
// The usual way to consume this package is the simplecounter binary in
// the subdirectory of the same name, but the Emitter type may also be
// driven in-process by test suites that want the sequence without the
// fork.
package simplecounter
