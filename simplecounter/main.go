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

// simplecounter is a fixture process for process management tests.  It
// counts to twenty on stdout, one line per second, announces that it
// finished, and exits zero.  No flags, no environment, no signal
// handling; kill it whenever your test needs a corpse.
package main

import (
	"github.com/gdamore/simplecounter"
)

func main() {
	simplecounter.NewEmitter().Run()
}
