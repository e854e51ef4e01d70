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

package rule

import (
	"errors"
	"fmt"
	"strings"
)

// Severity is the default level at which findings of a rule are reported.
type Severity uint8

const (
	Info Severity = iota
	Warning
	Error
)

// ErrInvalidSeverity is returned when a severity name is not recognized.
var ErrInvalidSeverity = errors.New("invalid severity")

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"

	case Warning:
		return "warning"

	case Error:
		return "error"

	default:
		return fmt.Sprintf("Severity(%d)", s)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	switch s {
	case Info, Warning, Error:
		return []byte(s.String()), nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidSeverity, s)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "info", "suggestion", "hint":
		*s = Info

	case "warning", "warn":
		*s = Warning

	case "error":
		*s = Error

	default:
		return fmt.Errorf("%w: %q", ErrInvalidSeverity, text)
	}

	return nil
}
