// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"io"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns the unified diff between the analyzed and the fixed text of f.
// It is empty when f is unchanged.
func Diff(f File) (string, error) {
	if !f.Changed() {
		return "", nil
	}

	name := filepath.ToSlash(f.Path)

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(f.Tree.Text()),
		B:        difflib.SplitLines(f.Fixed.Text()),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
}

// WriteDiffs writes the diffs of all changed files to w.
func WriteDiffs(w io.Writer, files []File) error {
	for _, f := range files {
		diff, err := Diff(f)
		if err != nil {
			return err
		}

		if _, err := io.WriteString(w, diff); err != nil {
			return err
		}
	}

	return nil
}
