// Copyright 2025 voracious-sort Authors
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

// Command vsortbench benchmarks and verifies the radix sort kernels over the
// generator distributions.
//
// Usage:
//
//	vsortbench bench -sizes 1000,1000000 -dist uniform,zipf -reps 5
//	vsortbench bench -report results.toml
//	vsortbench verify
//	vsortbench info
//
// Every flag can also be set through a VSORT_* environment variable (for
// example VSORT_SIZES, VSORT_REPS) or a TOML file passed with -config.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
