// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"cmp"
	"regexp"
	"strconv"
	"strings"
)

var chunkifyRegexp = regexp.MustCompile(`(\d+|\D+)`)

func chunkify(s string) []string {
	return chunkifyRegexp.FindAllString(s, -1)
}

// AlphanumCompare compares two strings in natural order, so that "P2"
// sorts before "P10". Letters are compared case-insensitively. The result
// follows the convention of cmp.Compare.
func AlphanumCompare(a, b string) int {
	chunksA := chunkify(strings.ToLower(a))
	chunksB := chunkify(strings.ToLower(b))

	for i := 0; i < min(len(chunksA), len(chunksB)); i++ {
		aInt, aErr := strconv.Atoi(chunksA[i])
		bInt, bErr := strconv.Atoi(chunksB[i])

		// If both chunks are numeric, compare them as integers
		if aErr == nil && bErr == nil {
			if aInt != bInt {
				return cmp.Compare(aInt, bInt)
			}

			continue
		}

		if chunksA[i] != chunksB[i] {
			return strings.Compare(chunksA[i], chunksB[i])
		}
	}

	// One is a prefix of the other, the shorter one goes first.
	return cmp.Compare(len(chunksA), len(chunksB))
}
