// Copyright 2026 The Brewin Authors
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

package ast

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Decode parses the external AST format of — a program node
// of heterogeneous, elem_type-tagged maps, the shape a Brewin parser
// produces — into the typed node tree this package declares. The
// parser itself is the external collaborator; this is the
// one place that dynamic shape is allowed to exist, exactly at the
// seam where it turns into the tagged sum the rest of the evaluator
// switches over exhaustively.
func Decode(data []byte) (*Program, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return decodeProgram(raw)
}

func decodeProgram(m map[string]interface{}) (*Program, error) {
	prog := &Program{}
	for _, item := range asSlice(m["functions"]) {
		fd, err := decodeFunc(asMap(item))
		if err != nil {
			return nil, err
		}
		prog.Functions = append(prog.Functions, fd)
	}
	for _, item := range asSlice(m["structs"]) {
		sd, err := decodeStruct(asMap(item))
		if err != nil {
			return nil, err
		}
		prog.Structs = append(prog.Structs, sd)
	}
	return prog, nil
}

func decodeStruct(m map[string]interface{}) (*StructDef, error) {
	sd := &StructDef{Name: str(m["name"])}
	for _, item := range asSlice(m["fields"]) {
		fm := asMap(item)
		sd.Fields = append(sd.Fields, Field{Name: str(fm["name"]), Type: str(fm["var_type"])})
	}
	return sd, nil
}

func decodeFunc(m map[string]interface{}) (*FuncDef, error) {
	fd := &FuncDef{Name: str(m["name"]), ReturnType: str(m["return_type"])}
	for _, item := range asSlice(m["args"]) {
		am := asMap(item)
		fd.Params = append(fd.Params, Param{Name: str(am["name"]), Type: str(am["var_type"])})
	}
	body, err := decodeStmts(m["statements"])
	if err != nil {
		return nil, fmt.Errorf("func %s: %w", fd.Name, err)
	}
	fd.Body = body
	return fd, nil
}

func decodeStmts(raw interface{}) ([]Stmt, error) {
	var out []Stmt
	for _, item := range asSlice(raw) {
		s, err := decodeStmt(asMap(item))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func decodeStmt(m map[string]interface{}) (Stmt, error) {
	kind := str(m["elem_type"])
	switch kind {
	case "vardef":
		return &VarDef{Name: str(m["name"]), Type: str(m["var_type"])}, nil

	case "=":
		val, err := decodeExpr(m["expression"])
		if err != nil {
			return nil, err
		}
		return &Assign{Fields: splitDotted(str(m["name"])), Value: val}, nil

	case "fcall":
		call, err := decodeFCall(m)
		if err != nil {
			return nil, err
		}
		return &FCallStmt{Call: call}, nil

	case "if":
		cond, err := decodeExpr(m["condition"])
		if err != nil {
			return nil, err
		}
		then, err := decodeStmts(m["statements"])
		if err != nil {
			return nil, err
		}
		els, err := decodeStmts(m["else_statements"])
		if err != nil {
			return nil, err
		}
		return &If{Cond: cond, Then: then, Else: els}, nil

	case "for":
		var init, update Stmt
		var err error
		if m["init"] != nil {
			if init, err = decodeStmt(asMap(m["init"])); err != nil {
				return nil, err
			}
		}
		cond, err := decodeExpr(m["condition"])
		if err != nil {
			return nil, err
		}
		if m["update"] != nil {
			if update, err = decodeStmt(asMap(m["update"])); err != nil {
				return nil, err
			}
		}
		body, err := decodeStmts(m["statements"])
		if err != nil {
			return nil, err
		}
		return &For{Init: init, Cond: cond, Update: update, Body: body}, nil

	case "return":
		if m["expression"] == nil {
			return &Return{}, nil
		}
		val, err := decodeExpr(m["expression"])
		if err != nil {
			return nil, err
		}
		return &Return{Value: val}, nil

	case "raise":
		val, err := decodeExpr(m["exception_type"])
		if err != nil {
			return nil, err
		}
		return &Raise{Value: val}, nil

	case "try":
		body, err := decodeStmts(m["statements"])
		if err != nil {
			return nil, err
		}
		var catchers []Catcher
		for _, item := range asSlice(m["catchers"]) {
			cm := asMap(item)
			cbody, err := decodeStmts(cm["statements"])
			if err != nil {
				return nil, err
			}
			catchers = append(catchers, Catcher{Name: str(cm["exception_type"]), Body: cbody})
		}
		return &Try{Body: body, Catchers: catchers}, nil

	default:
		return nil, fmt.Errorf("unknown statement elem_type %q", kind)
	}
}

func decodeExpr(raw interface{}) (Expr, error) {
	if raw == nil {
		return nil, nil
	}
	m := asMap(raw)
	kind := str(m["elem_type"])
	switch kind {
	case "int":
		return &Lit{Kind: "int", Val: int64(num(m["val"]))}, nil
	case "string":
		return &Lit{Kind: "string", Val: str(m["val"])}, nil
	case "bool":
		b, _ := m["val"].(bool)
		return &Lit{Kind: "bool", Val: b}, nil
	case "nil":
		return &Lit{Kind: "nil"}, nil
	case "var":
		return &VarRef{Name: str(m["name"])}, nil
	case "fcall":
		return decodeFCall(m)
	case "new":
		return &New{Type: str(m["var_type"])}, nil
	case "+", "-", "*", "/", "==", "!=", "<", "<=", ">", ">=", "&&", "||":
		left, err := decodeExpr(m["op1"])
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(m["op2"])
		if err != nil {
			return nil, err
		}
		return &Binary{Op: kind, Left: left, Right: right}, nil
	case "!", "neg":
		operand, err := decodeExpr(m["op1"])
		if err != nil {
			return nil, err
		}
		return &Unary{Op: kind, Operand: operand}, nil
	default:
		return nil, fmt.Errorf("unknown expression elem_type %q", kind)
	}
}

func decodeFCall(m map[string]interface{}) (*FCall, error) {
	call := &FCall{Name: str(m["name"])}
	for _, item := range asSlice(m["args"]) {
		e, err := decodeExpr(item)
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, e)
	}
	return call, nil
}

func splitDotted(s string) []string {
	return strings.Split(s, ".")
}

func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func asSlice(v interface{}) []interface{} {
	s, _ := v.([]interface{})
	return s
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

func num(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}
