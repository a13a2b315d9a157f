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

// Package config parses the project-level configuration: an optional
// config file naming the enabled extension rules and a minimum language
// version, plus helpers that read a per-file `#lang "X.Y.Z"` pragma
// comment and compare versions via golang.org/x/mod/semver. No other
// package in this module calls it; the pipelines in package rules and
// the CLI driver run without consulting it.
package config

import (
	"bufio"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Project is the parsed contents of a runestone.toml-like project
// configuration file: one "key = value" pair per line, blank lines and
// "#"-prefixed lines ignored.
type Project struct {
	// EnabledRules lists the domain-extension rule names (see
	// rules.AllDomainRules) this project turns on; nil means "all of
	// them".
	EnabledRules []string
	// MinVersion is the "min_version" key, the lowest #lang pragma this
	// project accepts; empty means "no floor".
	MinVersion string
}

// ParseProject reads key/value pairs out of a runestone.toml-shaped
// config file's contents.
func ParseProject(src string) (*Project, error) {
	p := &Project{}
	sc := bufio.NewScanner(strings.NewReader(src))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("config: malformed line %q (expected key = value)", line)
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"`)
		switch key {
		case "rules":
			if value != "" {
				for _, r := range strings.Split(value, ",") {
					p.EnabledRules = append(p.EnabledRules, strings.TrimSpace(r))
				}
			}
		case "min_version":
			p.MinVersion = value
		default:
			return nil, fmt.Errorf("config: unknown key %q", key)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return p, nil
}

// RuleEnabled reports whether name is enabled under p. A nil
// EnabledRules means every rule is enabled.
func (p *Project) RuleEnabled(name string) bool {
	if p == nil || p.EnabledRules == nil {
		return true
	}
	for _, r := range p.EnabledRules {
		if r == name {
			return true
		}
	}
	return false
}

// pragmaPrefix is the leading text of a #lang pragma comment, as it
// appears verbatim in source (inside a KindComment leaf's text).
const pragmaPrefix = "#lang "

// LangPragma extracts the version named by a leading `#lang "X.Y.Z"`
// pragma comment, if line is one. It returns ok=false for any other
// comment (including an absent pragma).
func LangPragma(commentText string) (version string, ok bool) {
	if !strings.HasPrefix(commentText, pragmaPrefix) {
		return "", false
	}
	rest := strings.TrimSpace(commentText[len(pragmaPrefix):])
	rest = strings.Trim(rest, `"`)
	if rest == "" {
		return "", false
	}
	return rest, true
}

// VersionAtLeast reports whether version (an "X.Y.Z" pragma value, no
// leading "v") is semver-greater-than-or-equal to floor. A missing or
// invalid floor imposes no constraint.
func VersionAtLeast(version, floor string) bool {
	if floor == "" {
		return true
	}
	v, f := "v"+version, "v"+floor
	if !semver.IsValid(v) || !semver.IsValid(f) {
		return true
	}
	return semver.Compare(v, f) >= 0
}
