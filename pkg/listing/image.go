// Copyright 2025 walteh LLC
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

package listing

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// 🖼️ imagePattern matches file names the browser can inline
const imagePattern = "*.{png,jpg,jpeg,gif,webp,svg}"

// IsImage reports whether name has an inlinable image extension (case-insensitive).
func IsImage(name string) bool {
	matched, err := doublestar.Match(imagePattern, strings.ToLower(name))
	if err != nil {
		return false
	}
	return matched
}

// IsImage reports whether e is a file with an inlinable image extension.
func (e Entry) IsImage() bool {
	return e.Kind == KindFile && IsImage(e.Name)
}
