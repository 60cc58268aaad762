package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ori/internal/format"
)

func mustFormat(t *testing.T, src string) string {
	t.Helper()
	out, err := format.Format([]byte(src), format.Options{})
	require.NoError(t, err, "Format(%q)", src)
	return string(out)
}

func assertIdempotent(t *testing.T, src string) {
	t.Helper()
	ok, out1, out2, err := format.CheckIdempotent([]byte(src), format.Options{})
	require.NoError(t, err, "CheckIdempotent(%q)", src)
	require.Truef(t, ok, "not idempotent for %q:\n--- pass 1 ---\n%s\n--- pass 2 ---\n%s", src, out1, out2)
}

func TestIdempotentLiterals(t *testing.T) {
	srcs := []string{
		"@main() = 1;",
		"@main() = 1.5;",
		"@main() = 3.0;",
		"@main() = true;",
		"@main() = false;",
		`@main() = "hello";`,
		"@main() = 'a';",
		"@main() = 5s;",
		"@main() = 100ms;",
		"@main() = 2kb;",
	}
	for _, s := range srcs {
		assertIdempotent(t, s)
	}
}

func TestIdempotentOperatorPrecedence(t *testing.T) {
	srcs := []string{
		"@main() = 1 + 2 * 3;",
		"@main() = (1 + 2) * 3;",
		"@main() = 1 - 2 - 3;",
		"@main() = 1 - (2 - 3);",
		"@main() = a && b || c;",
		"@main() = a || (b && c);",
		"@main() = !a && b;",
		"@main() = -a + b;",
		"@main() = a < b && b < c;",
	}
	for _, s := range srcs {
		assertIdempotent(t, s)
	}
}

func TestIdempotentWrappedConditionals(t *testing.T) {
	srcs := []string{
		"@main() = if a { 1 } else { 2 };",
		"@main() = if a { if b { 1 } else { 2 } } else { 3 };",
		"@main() = for x in xs { print(x); };",
	}
	for _, s := range srcs {
		assertIdempotent(t, s)
	}
}

func TestIdempotentDestructuringAndMatch(t *testing.T) {
	srcs := []string{
		"@main() = match x { 1 => \"one\", _ => \"other\", };",
		"@main() = match p { (a, b) => a, };",
		"@main() = match r { Ok(v) => v, Err(e) => e, };",
	}
	for _, s := range srcs {
		assertIdempotent(t, s)
	}
}

func TestIdempotentTuplesAndLambdas(t *testing.T) {
	srcs := []string{
		"@main() = (1, 2, 3);",
		"@main() = (1,);",
		"@main() = x -> x + 1;",
		"@main() = (a, b) -> a + b;",
	}
	for _, s := range srcs {
		assertIdempotent(t, s)
	}
}

func TestIdempotentImportsAndAttrs(t *testing.T) {
	srcs := []string{
		"use std.io;\n\n@main() = 1;",
		"use std.io as io;\n\n@main() = 1;",
		"#[inline]\n@main() = 1;",
		"pub @main() = 1;",
	}
	for _, s := range srcs {
		assertIdempotent(t, s)
	}
}

func TestIdempotentTypeDefs(t *testing.T) {
	srcs := []string{
		"struct Point { x: int, y: int, }\n\n@main() = 1;",
		"enum Shape { Circle(r: int,), Square, }\n\n@main() = 1;",
		"type Alias = int;\n\n@main() = 1;",
		"struct Empty {}\n\n@main() = 1;",
	}
	for _, s := range srcs {
		assertIdempotent(t, s)
	}
}

func TestSingleTupleKeepsTrailingComma(t *testing.T) {
	out := mustFormat(t, "@main() = (1,);")
	require.Equal(t, "@main() = (1,);\n", out, "single-element tuple should keep its trailing comma")
}

func TestBlankLinesCollapseToOne(t *testing.T) {
	out := mustFormat(t, "@a() = 1;\n\n\n\n@b() = 2;")
	require.Equal(t, "@a() = 1;\n\n@b() = 2;\n", out)
}

func TestCommentAttachment(t *testing.T) {
	src := "// doc for a\n@a() = 1;\n\n// unrelated, separated by a blank line\n\n@b() = 2;"
	out := mustFormat(t, src)
	require.Contains(t, out, "// doc for a", "expected leading comment to be kept")
}
