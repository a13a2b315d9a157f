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

package rules

import (
	"github.com/xwb1989/sqlparser"

	"github.com/runestone-lang/runestone/cst"
	"github.com/runestone-lang/runestone/engine"
)

// SQLStringRule reformats a plain string literal whose content parses as
// a single SQL statement, normalizing keyword casing and spacing via
// sqlparser's own re-stringification. A literal that does not parse as
// SQL (the overwhelming majority of string literals in any given
// source) is left untouched -- this is a best-effort probe, not a
// declared SQL literal syntax.
func SQLStringRule() engine.Rule {
	return engine.RuleFunc{
		RuleName: "sqlstring",
		Fn: func(ctx *engine.Context, node cst.Node) engine.Outcome {
			content, ok := literalContent(node, cst.KindString)
			if !ok {
				return accept()
			}
			stmt, err := sqlparser.Parse(string(content.Text))
			if err != nil {
				return accept()
			}
			reprinted := []byte(sqlparser.String(stmt))
			if string(reprinted) == string(content.Text) {
				return accept()
			}
			return replaceLiteralContent(ctx, node, content, reprinted)
		},
	}
}
