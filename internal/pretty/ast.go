package pretty

import (
	"strings"

	"github.com/programmerjake/quick-shell/pkg/ast"
)

// DumpAST renders v (a *ast.Word or ast.WordPart) the way ast.Dump does,
// with node type names and field names colorized per styles.
func DumpAST(styles *Styles, v interface{}) string {
	dump := ast.Dump(v)
	lines := strings.Split(dump, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, ".") {
			lines[i] = indent + styles.NodeKind.Render(trimmed)
			continue
		}
		field, value, ok := strings.Cut(trimmed, " = ")
		if !ok {
			continue
		}
		lines[i] = indent + styles.NodeField.Render(field) + " = " + value
	}
	return strings.Join(lines, "\n")
}
