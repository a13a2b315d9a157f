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

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseProjectBasic(t *testing.T) {
	src := "rules = sql, yaml\nmin_version = \"1.2.0\"\n"
	p, err := ParseProject(src)
	require.NoError(t, err)
	require.Equal(t, []string{"sql", "yaml"}, p.EnabledRules)
	require.Equal(t, "1.2.0", p.MinVersion)
}

func TestParseProjectSkipsBlankAndCommentLines(t *testing.T) {
	src := "# a comment\n\nmin_version = 1.0.0\n"
	p, err := ParseProject(src)
	require.NoError(t, err)
	require.Equal(t, "1.0.0", p.MinVersion)
}

func TestParseProjectRejectsMalformedLine(t *testing.T) {
	_, err := ParseProject("not a pair\n")
	require.Error(t, err)
}

func TestParseProjectRejectsUnknownKey(t *testing.T) {
	_, err := ParseProject("bogus = 1\n")
	require.Error(t, err)
}

func TestParseProjectEmptyRulesLeavesListNil(t *testing.T) {
	p, err := ParseProject("rules = \n")
	require.NoError(t, err)
	require.Nil(t, p.EnabledRules)
}

func TestRuleEnabledNilProjectAllowsEverything(t *testing.T) {
	var p *Project
	require.True(t, p.RuleEnabled("sql"))
}

func TestRuleEnabledNilListAllowsEverything(t *testing.T) {
	p := &Project{}
	require.True(t, p.RuleEnabled("sql"))
}

func TestRuleEnabledRespectsExplicitList(t *testing.T) {
	p := &Project{EnabledRules: []string{"sql"}}
	require.True(t, p.RuleEnabled("sql"))
	require.False(t, p.RuleEnabled("yaml"))
}

func TestLangPragma(t *testing.T) {
	version, ok := LangPragma(`#lang "1.4.0"`)
	require.True(t, ok)
	require.Equal(t, "1.4.0", version)

	_, ok = LangPragma("# just a comment")
	require.False(t, ok)

	_, ok = LangPragma(`#lang ""`)
	require.False(t, ok)
}

func TestVersionAtLeast(t *testing.T) {
	require.True(t, VersionAtLeast("1.4.0", "1.2.0"))
	require.False(t, VersionAtLeast("1.1.0", "1.2.0"))
	require.True(t, VersionAtLeast("1.2.0", "1.2.0"))
	require.True(t, VersionAtLeast("1.2.0", ""), "no floor imposes no constraint")
	require.True(t, VersionAtLeast("not-a-version", "1.2.0"), "invalid input imposes no constraint")
}
