package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrinter(t *testing.T, opts Options) *Printer {
	t.Helper()
	p, err := New(opts)
	require.NoError(t, err)
	return p
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		opts func(*Options)
		in   string
		want string
	}{
		{
			name: "reindent",
			in:   "export class A {\nconstructor() {\n}\n      fillForm(form: FormGroup): FormGroup {\nreturn form;\n}\n}",
			want: "export class A {\n  constructor() {\n  }\n  fillForm(form: FormGroup): FormGroup {\n    return form;\n  }\n}\n",
		},
		{
			name: "tab width",
			opts: func(o *Options) { o.TabWidth = 4 },
			in:   "a {\nb: [\nc,\n],\n}",
			want: "a {\n    b: [\n        c,\n    ],\n}\n",
		},
		{
			name: "tabs",
			opts: func(o *Options) { o.UseTabs = true },
			in:   "a {\n  b;\n}",
			want: "a {\n\tb;\n}\n",
		},
		{
			name: "double to single quotes",
			in:   `import { A } from "./a";`,
			want: "import { A } from './a';\n",
		},
		{
			name: "keep quotes that avoid escapes",
			in:   `const s = "it's";`,
			want: "const s = \"it's\";\n",
		},
		{
			name: "unescape other quote",
			in:   `const s = "say \"hi\"";`,
			want: "const s = 'say \"hi\"';\n",
		},
		{
			name: "prefer double quotes",
			opts: func(o *Options) { o.SingleQuote = false },
			in:   `const s = 'x';`,
			want: "const s = \"x\";\n",
		},
		{
			name: "bracket spacing",
			in:   "import {A,B} from './a';\nconst e = {  };\nconst o = {a: {b: 1}};",
			want: "import { A,B } from './a';\nconst e = {};\nconst o = { a: { b: 1 } };\n",
		},
		{
			name: "no bracket spacing",
			opts: func(o *Options) { o.BracketSpacing = false },
			in:   "import { A } from './a';",
			want: "import {A} from './a';\n",
		},
		{
			name: "blank lines",
			in:   "\n\na {\n\n\nb;\n\n}\n\n\nc;\n\n",
			want: "a {\n  b;\n}\n\nc;\n",
		},
		{
			name: "brackets inside strings",
			in:   "const s = '{';\nconst t = \"(\";\nx;",
			want: "const s = '{';\nconst t = '(';\nx;\n",
		},
		{
			name: "comments untouched",
			in:   "a {\n// keep \"this\" {as is}\n/*\n * {\n */\n}",
			want: "a {\n  // keep \"this\" {as is}\n  /*\n  * {\n  */\n}\n",
		},
		{
			name: "regex with quantifier braces",
			in:   "v = {\n'zip': [Validators.pattern(/^[0-9]{5}$/)],\n};",
			want: "v = {\n  'zip': [Validators.pattern(/^[0-9]{5}$/)],\n};\n",
		},
		{
			name: "regex with quote in class",
			in:   "v = {\n'name': [Validators.pattern(/^[^']*$/)],\n};",
			want: "v = {\n  'name': [Validators.pattern(/^[^']*$/)],\n};\n",
		},
		{
			name: "regex with escaped slashes",
			in:   "v = {\n'url': [Validators.pattern(/^https?:\\/\\//i)],\n};",
			want: "v = {\n  'url': [Validators.pattern(/^https?:\\/\\//i)],\n};\n",
		},
		{
			name: "regex slash in class",
			in:   `const r = [/[/"]/, "a"];`,
			want: "const r = [/[/\"]/, 'a'];\n",
		},
		{
			name: "division is not a regex",
			in:   "const r = a / b + {x: 1}.x / 2;",
			want: "const r = a / b + { x: 1 }.x / 2;\n",
		},
		{
			name: "crlf",
			in:   "a {\r\nb;\r\n}\r\n",
			want: "a {\n  b;\n}\n",
		},
		{
			name: "empty",
			in:   "\n\n",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			if tt.opts != nil {
				tt.opts(&opts)
			}
			p := mustPrinter(t, opts)

			got, err := p.Format("test.ts", tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := p.Format("test.ts", got)
			require.NoError(t, err)
			assert.Equal(t, got, again, "formatting must be idempotent")
		})
	}
}

func TestFormatUnbalanced(t *testing.T) {
	p := mustPrinter(t, DefaultOptions())

	_, err := p.Format("a.ts", "a;\n}")
	assert.EqualError(t, err, "a.ts:2: unbalanced closing bracket")

	_, err = p.Format("b.ts", "a {\nb(")
	assert.EqualError(t, err, "b.ts: 2 unclosed brackets")

	_, err = p.Format("c.ts", "a());")
	assert.EqualError(t, err, "c.ts:1: unbalanced closing bracket")
}

func TestNew(t *testing.T) {
	_, err := New(Options{Parser: "flow"})
	assert.ErrorIs(t, err, ErrUnsupportedParser)

	_, err = New(Options{Parser: "typescript", TabWidth: -1})
	assert.Error(t, err)

	p, err := New(Options{TabWidth: 2})
	require.NoError(t, err)
	assert.Equal(t, "typescript", p.opts.Parser)

	p, err = New(Options{Parser: "babel-ts", TabWidth: 8, UseTabs: true})
	require.NoError(t, err)
	assert.Equal(t, "\t", p.indent)
}
