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

// Package syntax defines the immutable syntax tree the redundancy rules run on.
//
// A [Node] is a token or a composite node with ordered children. Tokens own
// their [Trivia]: trailing trivia runs up to and including the first line
// break after the token, everything else belongs to the leading trivia of the
// next token. A [Tree] indexes a root node in preorder and hands out [Cursor]
// values for read-only navigation to parents, children and siblings.
package syntax
