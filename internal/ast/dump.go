package ast

// Dump converts a tree into plain maps and slices so that any encoder
// (YAML, JSON) can emit it without knowing the node types.
func Dump(node Node) any {
	switch n := node.(type) {
	case *Program:
		decls := make([]any, 0, len(n.Decpart))
		for _, decl := range n.Decpart {
			decls = append(decls, Dump(decl))
		}
		return map[string]any{
			"declarations": decls,
			"body":         Dump(n.Body),
		}
	case *Declaration:
		return map[string]any{"name": n.V.ID, "type": n.T.String()}
	case *Block:
		stmts := make([]any, 0, len(n.Members))
		for _, stmt := range n.Members {
			stmts = append(stmts, Dump(stmt))
		}
		return stmts
	case *Assignment:
		return map[string]any{"assignment": map[string]any{
			"target": n.Target.ID,
			"source": Dump(n.Source),
		}}
	case *Conditional:
		cond := map[string]any{
			"test": Dump(n.Test),
			"then": Dump(n.ThenBranch),
		}
		if n.ElseBranch != nil {
			cond["else"] = Dump(n.ElseBranch)
		}
		return map[string]any{"conditional": cond}
	case *Loop:
		return map[string]any{"loop": map[string]any{
			"test": Dump(n.Test),
			"body": Dump(n.Body),
		}}
	case *Variable:
		return map[string]any{"variable": n.ID}
	case *Value:
		if n.Type == BOOL_VALUE {
			return map[string]any{"value": n.Bool}
		}
		return map[string]any{"value": n.Int}
	case *Binary:
		return map[string]any{"binary": map[string]any{
			"op":    n.Op.String(),
			"term1": Dump(n.Term1),
			"term2": Dump(n.Term2),
		}}
	case *Unary:
		return map[string]any{"unary": map[string]any{
			"op":   n.Op.String(),
			"term": Dump(n.Term),
		}}
	}
	return nil
}

// MarshalYAML lets gopkg.in/yaml.v3 encode a program directly.
func (program *Program) MarshalYAML() (any, error) {
	return Dump(program), nil
}
