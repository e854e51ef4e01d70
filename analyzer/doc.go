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

// Package analyzer implements the redundancy static analysis pass.
//
// # Overview
//
// Redundancy detects redundant C# constructs and suggests fixes removing them:
//
//   - RD0001: compound boolean assignments with a constant operand, like
//     `x |= true`, which are simple assignments.
//   - RD0002: catch clauses containing only `throw;`, which do not change the
//     behavior of the try statement.
//   - RD0003: trailing arguments passing the default value of their parameter.
//
// The analyzer checks the C# files found next to the Go files of a package,
// selected by a pattern, and the matching files in [analysis.Pass.OtherFiles].
//
// # Example
//
// Before:
//
//	try
//	{
//	    Save(document, overwrite: false);
//	}
//	catch (IOException)
//	{
//	    throw;
//	}
//
// After applying the suggested fixes:
//
//	{
//	    Save(document);
//	}
//
// # Suppression
//
// Findings are suppressed by `// ReSharper disable once RedundantCatchClause`
// comments, `// ReSharper disable` / `restore` ranges, `#pragma warning disable RD0002`
// directives and `//nolint:redundancy` comments.
package analyzer
