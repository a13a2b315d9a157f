//  Copyright (c) 2023 Uber Technologies, Inc.
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

// Command runestonefmt is the CLI driver: it reads one or more source
// files, runs each through its own engine.Context concurrently, and
// either rewrites the file in place, reports whether it would change
// (--check), or prints a unified diff (--diff).
package main

import (
	"fmt"
	"os"

	"github.com/runestone-lang/runestone/cmd/runestonefmt/internal/driver"
)

func main() {
	if err := driver.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
