package mdfences

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Extender is a goldmark extension that converts interactive fenced code
// blocks into their container divs during a goldmark render pass. It serves
// pipelines that render markdown with goldmark directly, as an alternative
// to pre-filtering the page text with Transform.
//
//	md := goldmark.New(goldmark.WithExtensions(&mdfences.Extender{}))
//
// Fence recognition follows goldmark's own fence grammar here; the info
// string must be one of the recognized type names. Other fenced code blocks
// are untouched.
type Extender struct{}

// Extend registers the fence transformer and its node renderer.
func (e *Extender) Extend(md goldmark.Markdown) {
	md.Parser().AddOptions(
		parser.WithASTTransformers(
			util.Prioritized(&fenceASTTransformer{parser: yamlConfigParser{}}, 100),
		),
	)
	md.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(&fragmentNodeRenderer{}, 100),
		),
	)
}

// interactiveBlock replaces a matched fenced code block in the AST and
// carries its pre-rendered fragment.
type interactiveBlock struct {
	ast.BaseBlock
	fenceType string
	fragment  string
}

var kindInteractiveBlock = ast.NewNodeKind("InteractiveBlock")

// Kind implements ast.Node.
func (n *interactiveBlock) Kind() ast.NodeKind { return kindInteractiveBlock }

// Dump implements ast.Node.
func (n *interactiveBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"FenceType": n.fenceType}, nil)
}

// fenceASTTransformer swaps recognized fenced code blocks for
// interactiveBlock nodes so that only those blocks get a dedicated
// renderer, leaving ordinary code blocks to the default one.
type fenceASTTransformer struct {
	parser configParser
}

// Transform implements parser.ASTTransformer.
func (t *fenceASTTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()

	var blocks []*ast.FencedCodeBlock
	// The walk callback never returns an error.
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fb, ok := node.(*ast.FencedCodeBlock)
		if ok && fenceTypeSet[string(fb.Language(source))] {
			blocks = append(blocks, fb)
		}
		return ast.WalkContinue, nil
	})

	for _, fb := range blocks {
		fenceType := string(fb.Language(source))
		repl := &interactiveBlock{
			fenceType: fenceType,
			fragment:  t.renderBody(fenceType, fenceBody(fb, source)),
		}
		parent := fb.Parent()
		parent.ReplaceChild(parent, fb, repl)
	}
}

// renderBody parses a fence body and renders its fragment, falling back to
// the warning admonition on a parse failure.
func (t *fenceASTTransformer) renderBody(fenceType, body string) string {
	cfg, err := t.parser.Parse(body)
	if err != nil {
		return renderWarning(fenceType)
	}
	return renderFragment(fenceType, cfg)
}

// fenceBody reassembles the raw body text of a fenced code block.
func fenceBody(fb *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := fb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}

// fragmentNodeRenderer writes the pre-rendered fragment for
// interactiveBlock nodes.
type fragmentNodeRenderer struct{}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *fragmentNodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindInteractiveBlock, r.render)
}

func (r *fragmentNodeRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*interactiveBlock)
	_, _ = w.WriteString(n.fragment)
	_, _ = w.WriteString("\n")
	return ast.WalkContinue, nil
}
